// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LoadEnemyDefinitions reads an enemy override file and merges it into
// EnemyLibrary. Entries replace the built-in definition of the same kind.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.Kind == "" {
			log.Printf("defs: skipping enemy definition without kind in %s", path)
			continue
		}
		EnemyLibrary[def.Kind] = def
	}

	log.Printf("Loaded %d enemy definitions from %s", len(enemyDefs), path)
	return nil
}

// LoadCannonDefinitions reads a cannon override file and merges it into CannonLibrary.
func LoadCannonDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cannon definitions file: %w", err)
	}

	var cannonDefs []CannonDefinition
	if err := json.Unmarshal(file, &cannonDefs); err != nil {
		return fmt.Errorf("failed to unmarshal cannon definitions: %w", err)
	}

	for _, def := range cannonDefs {
		if def.Kind == "" || def.Bullet == "" {
			log.Printf("defs: skipping cannon definition %q without kind or bullet in %s", def.Name, path)
			continue
		}
		CannonLibrary[def.Kind] = def
	}

	log.Printf("Loaded %d cannon definitions from %s", len(cannonDefs), path)
	return nil
}

// LoadSurvivalTables reads named survival weight tables.
func LoadSurvivalTables(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read survival tables file: %w", err)
	}

	var tables map[string]SurvivalParams
	if err := json.Unmarshal(file, &tables); err != nil {
		return fmt.Errorf("failed to unmarshal survival tables: %w", err)
	}

	for name, t := range tables {
		SurvivalTables[name] = t
	}
	return nil
}

// LoadOverrides loads every optional definition file found in dir.
// Missing files are not an error.
func LoadOverrides(dir string) error {
	loaders := []struct {
		name string
		load func(string) error
	}{
		{"enemies.json", LoadEnemyDefinitions},
		{"cannons.json", LoadCannonDefinitions},
		{"survival.json", LoadSurvivalTables},
	}
	for _, l := range loaders {
		path := filepath.Join(dir, l.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := l.load(path); err != nil {
			return err
		}
	}
	return nil
}
