package storage

import "github.com/julianstephens/zoneline/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Zones
	AddZone(models.ZoneRecord) error
	GetZone(name string) (models.ZoneRecord, error)
	GetAllZones(includeDeleted bool) ([]models.ZoneRecord, error)
	UpdateZone(models.ZoneRecord) error
	DeleteZone(name string) error
	RestoreZone(name string) error

	// Utils
	GetConfigPath() string
}

// Settings holds the store-backed configuration.
type Settings struct {
	// DefaultZone is the zone name commands fall back to when --zone is
	// not given.
	DefaultZone string `json:"default_zone"`
	// FromYear/ToYear bound the extraction window used when importing
	// IANA zones.
	FromYear int `json:"from_year"`
	ToYear   int `json:"to_year"`
}

// DefaultSettings are applied on init.
func DefaultSettings() Settings {
	return Settings{
		DefaultZone: "UTC",
		FromYear:    1900,
		ToYear:      2100,
	}
}
