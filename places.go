// Place name to forecast area code mapping.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed places.yaml
var placesYAML []byte

// ErrUnsupportedRegion is returned when a place name has no area code entry.
// It is surfaced to the model so it can retry with a nearby supported place.
var ErrUnsupportedRegion = errors.New("unsupported region")

// placeEntry mirrors one entry of the embedded places.yaml document.
type placeEntry struct {
	Name string `yaml:"name"`
	Code int    `yaml:"code"`
}

// placesFile mirrors the embedded places.yaml document.
type placesFile struct {
	Places []placeEntry `yaml:"places"`
}

// PlaceTable is the immutable place-name to area-code mapping, built once at startup.
type PlaceTable struct {
	codes map[string]int
	names []string
}

// LoadPlaces parses the embedded places.yaml into a PlaceTable.
func LoadPlaces() (*PlaceTable, error) {
	var file placesFile
	if err := yaml.Unmarshal(placesYAML, &file); err != nil {
		return nil, fmt.Errorf("parse places.yaml: %w", err)
	}
	if len(file.Places) == 0 {
		return nil, errors.New("places.yaml contains no places")
	}

	table := &PlaceTable{
		codes: make(map[string]int, len(file.Places)),
		names: make([]string, 0, len(file.Places)),
	}
	for _, entry := range file.Places {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errors.New("places.yaml entry with empty name")
		}
		if entry.Code <= 0 || entry.Code > 999999 {
			return nil, fmt.Errorf("places.yaml entry %q has invalid code %d", name, entry.Code)
		}
		if _, exists := table.codes[name]; exists {
			return nil, fmt.Errorf("places.yaml entry %q is duplicated", name)
		}
		table.codes[name] = entry.Code
		table.names = append(table.names, name)
	}
	return table, nil
}

// ResolvePlaceCode looks up a place name with a case-sensitive exact match.
// Unknown names fail with ErrUnsupportedRegion; no fuzzy matching is done
// here, the model is instructed to pick a nearby supported place instead.
func (t *PlaceTable) ResolvePlaceCode(place string) (int, error) {
	code, ok := t.codes[place]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedRegion, place)
	}
	return code, nil
}

// Names returns the supported place names in declaration order.
func (t *PlaceTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
