package deck

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/riffle/internal/card"
)

// NameConfig is the layout of a names file (e.g., names/en.toml):
//
//	[major_arcana]
//	00 = "The Fool"
//	maya = "Maya"
//
//	[minor_arcana.wands]
//	ace = "Ace of Wands"
//
//	[special]
//	white = "White"
type NameConfig struct {
	MajorArcana map[string]string            `toml:"major_arcana"`
	MinorArcana map[string]map[string]string `toml:"minor_arcana"`
	Special     map[string]string            `toml:"special"`
}

// Names maps canonical card IDs to localized names
type Names map[string]string

// LoadNames decodes a names file
func LoadNames(path string) (Names, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("names file not found: %s", path)
	}

	var cfg NameConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing names file: %w", err)
	}
	return cfg.Names(), nil
}

// DecodeNames decodes names from TOML text
func DecodeNames(data string) (Names, error) {
	var cfg NameConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing names: %w", err)
	}
	return cfg.Names(), nil
}

// Names flattens the config into canonical IDs
func (c NameConfig) Names() Names {
	names := make(Names)
	for key, name := range c.MajorArcana {
		names["major_arcana."+key] = name
	}
	for suit, ranks := range c.MinorArcana {
		for rank, name := range ranks {
			names[fmt.Sprintf("minor_arcana.%s.%s", suit, rank)] = name
		}
	}
	for key, name := range c.Special {
		names["special."+key] = name
	}
	return names
}

// Of returns the localized name of c, or its default name if none is set
func (n Names) Of(c card.Card) string {
	if name := strings.TrimSpace(n[c.ID()]); name != "" {
		return name
	}
	return c.Name()
}
