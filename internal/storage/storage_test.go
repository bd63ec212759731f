package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/tztable"
)

// newProviders builds a fresh, initialized store of each backend.
func newProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	providers := map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(dir, "zoneline.db")),
		"json":   NewJSONStore(filepath.Join(dir, "zoneline.json")),
	}
	for name, p := range providers {
		if err := p.Init(); err != nil {
			t.Fatalf("%s: Init failed: %v", name, err)
		}
	}
	return providers
}

func testZone(t *testing.T, name string, offset int) models.ZoneRecord {
	t.Helper()
	tab, err := tztable.Fixed(name, offset)
	if err != nil {
		t.Fatalf("Fixed failed: %v", err)
	}
	return models.ZoneRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    models.SourceFixed,
		Table:     tab,
		CreatedAt: time.Now().UTC().Format(constants.TimestampFormat),
	}
}

func TestInit_SeedsDefaultSettings(t *testing.T) {
	for name, p := range newProviders(t) {
		settings, err := p.GetSettings()
		if err != nil {
			t.Fatalf("%s: GetSettings failed: %v", name, err)
		}
		if settings != DefaultSettings() {
			t.Errorf("%s: settings = %+v, want defaults", name, settings)
		}
		if err := p.Close(); err != nil {
			t.Errorf("%s: Close failed: %v", name, err)
		}
	}
}

func TestLoad_FailsWhenNotInitialized(t *testing.T) {
	dir := t.TempDir()
	providers := map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(dir, "missing.db")),
		"json":   NewJSONStore(filepath.Join(dir, "missing.json")),
	}
	for name, p := range providers {
		if err := p.Load(); err == nil {
			t.Errorf("%s: Load on missing storage should fail", name)
		}
	}
}

func TestZone_AddGetRoundTrip(t *testing.T) {
	for name, p := range newProviders(t) {
		zone := testZone(t, "UTC+5", 5*3600)
		if err := p.AddZone(zone); err != nil {
			t.Fatalf("%s: AddZone failed: %v", name, err)
		}

		got, err := p.GetZone("UTC+5")
		if err != nil {
			t.Fatalf("%s: GetZone failed: %v", name, err)
		}
		if got.ID != zone.ID || got.Source != models.SourceFixed {
			t.Errorf("%s: got %+v", name, got)
		}
		if got.Table == nil || got.Table.Zones[0].OffsetSeconds != 5*3600 {
			t.Errorf("%s: transition table did not survive storage", name)
		}
	}
}

func TestZone_SoftDeleteAndRestore(t *testing.T) {
	for name, p := range newProviders(t) {
		if err := p.AddZone(testZone(t, "Doomed", 0)); err != nil {
			t.Fatalf("%s: AddZone failed: %v", name, err)
		}

		if err := p.DeleteZone("Doomed"); err != nil {
			t.Fatalf("%s: DeleteZone failed: %v", name, err)
		}
		if _, err := p.GetZone("Doomed"); err == nil {
			t.Errorf("%s: deleted zone should not be readable", name)
		}
		if err := p.DeleteZone("Doomed"); err == nil {
			t.Errorf("%s: double delete should fail", name)
		}

		// Still visible with includeDeleted, carrying deleted_at.
		all, err := p.GetAllZones(true)
		if err != nil {
			t.Fatalf("%s: GetAllZones failed: %v", name, err)
		}
		if len(all) != 1 || all[0].DeletedAt == nil {
			t.Errorf("%s: deleted zone missing from includeDeleted listing", name)
		}

		if err := p.RestoreZone("Doomed"); err != nil {
			t.Fatalf("%s: RestoreZone failed: %v", name, err)
		}
		if _, err := p.GetZone("Doomed"); err != nil {
			t.Errorf("%s: restored zone should be readable: %v", name, err)
		}
		if err := p.RestoreZone("Doomed"); err == nil {
			t.Errorf("%s: restoring a live zone should fail", name)
		}
	}
}

func TestGetAllZones_SortedByName(t *testing.T) {
	for name, p := range newProviders(t) {
		for _, zn := range []string{"zulu", "alpha", "mike"} {
			if err := p.AddZone(testZone(t, zn, 0)); err != nil {
				t.Fatalf("%s: AddZone failed: %v", name, err)
			}
		}
		zones, err := p.GetAllZones(false)
		if err != nil {
			t.Fatalf("%s: GetAllZones failed: %v", name, err)
		}
		want := []string{"alpha", "mike", "zulu"}
		if len(zones) != len(want) {
			t.Fatalf("%s: got %d zones", name, len(zones))
		}
		for i, zn := range want {
			if zones[i].Name != zn {
				t.Errorf("%s: zones[%d] = %s, want %s", name, i, zones[i].Name, zn)
			}
		}
	}
}

func TestSettings_SaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zoneline.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	want := Settings{DefaultZone: "Europe/Paris", FromYear: 1970, ToYear: 2050}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}
