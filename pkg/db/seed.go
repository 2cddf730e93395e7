package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/urmzd/homeview/pkg/entity"
)

// seedFile is the YAML layout of an entity fixture. Entries are decoded
// loosely and then run through the tolerant entity JSON decoder.
type seedFile struct {
	Devices  []map[string]any `yaml:"devices"`
	Groups   []map[string]any `yaml:"groups"`
	Adapters []map[string]any `yaml:"adapters"`
}

// LoadSeed reads a YAML entity fixture.
func LoadSeed(path string) ([]entity.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML entity fixture. The section an entry appears in
// decides its kind.
func ParseSeed(data []byte) ([]entity.Entity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var out []entity.Entity
	for _, section := range []struct {
		kind  entity.Kind
		items []map[string]any
	}{
		{entity.KindDevice, f.Devices},
		{entity.KindGroup, f.Groups},
		{entity.KindAdapter, f.Adapters},
	} {
		for i, item := range section.items {
			if id, ok := item["id"]; ok && id != nil {
				item["id"] = fmt.Sprint(id)
			}
			delete(item, "kind")
			raw, err := json.Marshal(item)
			if err != nil {
				return nil, fmt.Errorf("%s #%d: %w", section.kind, i, err)
			}
			var e entity.Entity
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("%s #%d: %w", section.kind, i, err)
			}
			if e.ID == "" {
				return nil, fmt.Errorf("%s #%d: id is required", section.kind, i)
			}
			e.Kind = section.kind
			out = append(out, e)
		}
	}
	return out, nil
}

// ImportSeed upserts entities in a single transaction.
func (db *DB) ImportSeed(ctx context.Context, entities []entity.Entity) error {
	return db.Tx(ctx, func(tx *sql.Tx) error {
		for i := range entities {
			if err := putEntity(ctx, tx, &entities[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
