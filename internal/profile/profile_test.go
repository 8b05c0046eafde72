package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "profile.json"))
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.MaxLevel != 1 || p.Version != config.ProfileVersion {
		t.Errorf("unexpected default %+v", p)
	}
	c, ok := p.EquippedCannon()
	if !ok || c.Type != defs.CannonBlaster {
		t.Errorf("default equipped cannon = %+v, %v", c, ok)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "profile.json"))
	p := Default()
	p.Currency = 420
	p.Cannons = append(p.Cannons, CannonRecord{ID: "c2", Type: defs.CannonRailgun, Level: 3, Rarity: 2, Star: 1})
	p.Equipped = "c2"
	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, _ := got.EquippedCannon()
	if got.Currency != 420 || c.Type != defs.CannonRailgun || c.Star != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(s.Path()))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestMigrateV1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	v1 := `{"version":1,"currency":50,"max_level":2,
		"cannons":[{"id":"a","type":"Launcher","level":2,"rarity":9},{"id":"b","type":"Laser"}],
		"equipped":"a"}`
	if err := os.WriteFile(path, []byte(v1), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Version != 2 {
		t.Errorf("version = %d", p.Version)
	}
	if p.Cannons[0].Star != 0 || p.Cannons[0].Rarity != 4 {
		t.Errorf("cannon a not normalised: %+v", p.Cannons[0])
	}
	if p.Cannons[1].Type != defs.CannonBlaster {
		t.Errorf("unknown type should fall back to blaster, got %q", p.Cannons[1].Type)
	}
}

func TestFutureVersionRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"version":99}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(path).Load(); !errors.Is(err, ErrFutureVersion) {
		t.Fatalf("expected ErrFutureVersion, got %v", err)
	}
}

func TestBankUnlocksNextLevel(t *testing.T) {
	p := Default()
	p.Bank(100, 1)
	p.Bank(30, 1)
	if p.Currency != 130 || p.MaxLevel != 2 {
		t.Errorf("after banking: currency %d, max level %d", p.Currency, p.MaxLevel)
	}
}

func TestEquippedFallsBack(t *testing.T) {
	p := Default()
	p.Equipped = "gone"
	if c, ok := p.EquippedCannon(); !ok || c.ID != "c1" {
		t.Errorf("fallback = %+v, %v", c, ok)
	}
}
