// internal/profile/profile.go
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

// ErrFutureVersion is returned for records written by a newer build.
var ErrFutureVersion = errors.New("profile version is newer than supported")

// CannonRecord is one owned cannon.
type CannonRecord struct {
	ID     string          `json:"id"`
	Type   defs.CannonKind `json:"type"`
	Level  int             `json:"level"`
	Rarity int             `json:"rarity"`
	Star   int             `json:"star_level"`
}

// Progression returns the record's stat inputs, clamped.
func (c CannonRecord) Progression() component.Progression {
	return component.Progression{Level: c.Level, Star: c.Star, Rarity: c.Rarity}.Clamp()
}

// Profile is the persisted player progression.
type Profile struct {
	Version  int            `json:"version"`
	Currency int            `json:"currency"`
	MaxLevel int            `json:"max_level"`
	Cannons  []CannonRecord `json:"cannons"`
	Equipped string         `json:"equipped"`
}

// Default is the profile of a fresh install.
func Default() *Profile {
	return &Profile{
		Version:  config.ProfileVersion,
		MaxLevel: 1,
		Cannons:  []CannonRecord{{ID: "c1", Type: defs.CannonBlaster}},
		Equipped: "c1",
	}
}

// EquippedCannon returns the equipped record. A dangling equipped id
// falls back to the first owned cannon.
func (p *Profile) EquippedCannon() (CannonRecord, bool) {
	for _, c := range p.Cannons {
		if c.ID == p.Equipped {
			return c, true
		}
	}
	if len(p.Cannons) > 0 {
		return p.Cannons[0], true
	}
	return CannonRecord{}, false
}

// Bank adds a finished session's currency and unlocks the level after
// finished.
func (p *Profile) Bank(currency, finished int) {
	p.Currency += currency
	if finished+1 > p.MaxLevel {
		p.MaxLevel = finished + 1
	}
}

// Store reads and writes a profile file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the profile. A missing file yields Default. Older versions
// are migrated in memory; the next Save persists the new layout.
func (s *Store) Load() (*Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := migrate(&p); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return &p, nil
}

// Save writes the profile atomically through a temp file and rename.
func (s *Store) Save(p *Profile) error {
	p.Version = config.ProfileVersion
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".profile-*")
	if err != nil {
		return fmt.Errorf("failed to create temp profile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close profile: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace profile: %w", err)
	}
	return nil
}

// migrate brings p up to ProfileVersion.
func migrate(p *Profile) error {
	if p.Version > config.ProfileVersion {
		return fmt.Errorf("version %d: %w", p.Version, ErrFutureVersion)
	}
	if p.Version < 2 {
		// v1 had no star_level; unmarshal already left it at zero.
		log.Printf("profile: migrating v%d record to v%d", p.Version, config.ProfileVersion)
		p.Version = 2
	}
	if p.MaxLevel < 1 {
		p.MaxLevel = 1
	}
	if len(p.Cannons) == 0 {
		def := Default()
		p.Cannons = def.Cannons
		p.Equipped = def.Equipped
	}
	for i := range p.Cannons {
		c := &p.Cannons[i]
		if _, ok := defs.CannonLibrary[c.Type]; !ok {
			log.Printf("profile: cannon %s has unknown type %q, using %s", c.ID, c.Type, defs.CannonBlaster)
			c.Type = defs.CannonBlaster
		}
		pr := c.Progression()
		c.Level, c.Star, c.Rarity = pr.Level, pr.Star, pr.Rarity
	}
	return nil
}
