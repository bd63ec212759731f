package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/models"
)

// jsonFile is the on-disk shape of the JSON backend.
type jsonFile struct {
	Version  int                          `json:"version"`
	Settings Settings                     `json:"settings"`
	Zones    map[string]models.ZoneRecord `json:"zones"` // keyed by name
}

// JSONStore keeps everything in a single pretty-printed JSON file. Handy
// for inspection and for carrying a zone set between machines; the SQLite
// backend is the default.
type JSONStore struct {
	path string
	data *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = &jsonFile{
		Version:  schemaVersion,
		Settings: DefaultSettings(),
		Zones:    make(map[string]models.ZoneRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.data != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'zoneline init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = &jsonFile{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.data.Version != schemaVersion {
		return fmt.Errorf("schema version mismatch: file has %d, this build expects %d", s.data.Version, schemaVersion)
	}

	if s.data.Zones == nil {
		s.data.Zones = make(map[string]models.ZoneRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.data == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.data.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data.Settings = settings
	return s.save()
}

func (s *JSONStore) AddZone(zone models.ZoneRecord) error {
	return s.UpdateZone(zone)
}

func (s *JSONStore) GetZone(name string) (models.ZoneRecord, error) {
	if s.data == nil {
		return models.ZoneRecord{}, fmt.Errorf("storage not loaded")
	}
	z, ok := s.data.Zones[name]
	if !ok || z.DeletedAt != nil {
		return models.ZoneRecord{}, fmt.Errorf("zone not found")
	}
	return z, nil
}

func (s *JSONStore) GetAllZones(includeDeleted bool) ([]models.ZoneRecord, error) {
	if s.data == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var zones []models.ZoneRecord
	for _, z := range s.data.Zones {
		if z.DeletedAt != nil && !includeDeleted {
			continue
		}
		zones = append(zones, z)
	}
	sortZonesByName(zones)
	return zones, nil
}

func (s *JSONStore) UpdateZone(zone models.ZoneRecord) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	if zone.Table == nil {
		return fmt.Errorf("zone %q has no transition table", zone.Name)
	}
	s.data.Zones[zone.Name] = zone
	return s.save()
}

func (s *JSONStore) DeleteZone(name string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	z, ok := s.data.Zones[name]
	if !ok {
		return fmt.Errorf("zone %q not found", name)
	}
	if z.DeletedAt != nil {
		return fmt.Errorf("zone %q is already deleted", name)
	}

	now := time.Now().UTC().Format(constants.TimestampFormat)
	z.DeletedAt = &now
	s.data.Zones[name] = z
	return s.save()
}

func (s *JSONStore) RestoreZone(name string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	z, ok := s.data.Zones[name]
	if !ok {
		return fmt.Errorf("zone %q not found", name)
	}
	if z.DeletedAt == nil {
		return fmt.Errorf("cannot restore a zone that is not deleted: %s", name)
	}

	z.DeletedAt = nil
	s.data.Zones[name] = z
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func sortZonesByName(zones []models.ZoneRecord) {
	sort.Slice(zones, func(i, j int) bool {
		return zones[i].Name < zones[j].Name
	})
}
