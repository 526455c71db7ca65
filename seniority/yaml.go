// SPDX-License-Identifier: MIT

package seniority

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk shape of a mapping:
//
//	levels:
//	  1: [Head Coach]
//	  2: [Offensive Coordinator, Defensive Coordinator]
//	extend: true
//
// With extend set, the listed titles are merged over Default().
type fileFormat struct {
	Levels map[int][]string `yaml:"levels"`
	Extend bool             `yaml:"extend"`
}

// LoadYAML decodes a mapping from r.
func LoadYAML(r io.Reader) (*Mapping, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("seniority: decode mapping: %w", err)
	}

	tables := make(map[Level][]string, len(f.Levels))
	if f.Extend {
		for lvl, titles := range defaultTables {
			tables[lvl] = append(tables[lvl], titles...)
		}
		// Titles moved to another level by the file replace the default entry.
		moved := make(map[string]struct{})
		for _, titles := range f.Levels {
			for _, t := range titles {
				moved[normalize(t)] = struct{}{}
			}
		}
		for lvl, titles := range tables {
			kept := titles[:0:0]
			for _, t := range titles {
				if _, ok := moved[normalize(t)]; !ok {
					kept = append(kept, t)
				}
			}
			tables[lvl] = kept
		}
	}
	for lvl, titles := range f.Levels {
		tables[Level(lvl)] = append(tables[Level(lvl)], titles...)
	}

	return NewMapping(tables)
}

// LoadFile is LoadYAML over the named file.
func LoadFile(path string) (*Mapping, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seniority: open mapping: %w", err)
	}
	defer fh.Close()

	return LoadYAML(fh)
}
