package axes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape of an instrument.
type fileConfig struct {
	Name string `yaml:"name"`
	Axes []Axis `yaml:"axes"`
}

// Get returns the built-in instrument for the given name.
func Get(name string) (*Config, error) {
	switch name {
	case DefaultName, "":
		return Default(), nil
	default:
		return nil, fmt.Errorf("unknown instrument %q: valid instruments are %s", name, DefaultName)
	}
}

// Load reads a YAML instrument file and validates it. When the file does not
// set a name, the file's base name is used.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading axes file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("axes file %s is empty", path)
	}

	var parsed fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing axes file: %w", err)
	}

	name := strings.TrimSpace(parsed.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	cfg, err := New(name, parsed.Axes)
	if err != nil {
		return nil, fmt.Errorf("invalid axes file %s: %w", path, err)
	}
	return cfg, nil
}

// Encode returns the canonical YAML form of cfg. Load(Encode(cfg)) yields an
// equivalent Config.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fileConfig{Name: cfg.name, Axes: cfg.axes}); err != nil {
		return nil, fmt.Errorf("encoding axes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding axes: %w", err)
	}
	return buf.Bytes(), nil
}
