// Package skydata loads the legacy filename table that distant sky
// generation draws its image names from.
package skydata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

//go:embed table.schema.json
var tableSchema string

var schema = jsonschema.MustCompileString("table.schema.json", tableSchema)

// ErrMissingEntry is returned when a table lookup is out of range.
var ErrMissingEntry = errors.New("missing sky data entry")

// Table holds the filename templates. It is read-only after loading.
type Table struct {
	DistantMountainFilenames     []string `yaml:"distant_mountain_filenames" json:"distant_mountain_filenames"`
	CloudFilename                string   `yaml:"cloud_filename" json:"cloud_filename"`
	AnimDistantMountainFilenames []string `yaml:"anim_distant_mountain_filenames" json:"anim_distant_mountain_filenames"`
	MoonFilenames                []string `yaml:"moon_filenames" json:"moon_filenames"`
	StarFilename                 string   `yaml:"star_filename" json:"star_filename"`
	SunFilename                  string   `yaml:"sun_filename" json:"sun_filename"`
}

// Default returns the built-in table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("skydata: built-in table is invalid: %v", err))
	}
	return t
}

// Load reads and validates a table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sky data: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sky data %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table from YAML.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the table against its JSON schema.
func (t *Table) Validate() error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validating: %w", err)
	}
	return nil
}

// MountainFilename returns the mountain template at index i.
func (t *Table) MountainFilename(i int) (string, error) {
	return entry(t.DistantMountainFilenames, i, "distant mountain")
}

// AnimatedLandFilename returns the animated land filename at index i.
func (t *Table) AnimatedLandFilename(i int) (string, error) {
	return entry(t.AnimDistantMountainFilenames, i, "animated land")
}

// MoonFilename returns the moon filename at index i.
func (t *Table) MoonFilename(i int) (string, error) {
	return entry(t.MoonFilenames, i, "moon")
}

func entry(list []string, i int, what string) (string, error) {
	if i < 0 || i >= len(list) {
		return "", fmt.Errorf("%w: %s filename %d (have %d)", ErrMissingEntry, what, i, len(list))
	}
	return list[i], nil
}
