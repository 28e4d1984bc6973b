// Package config reads hexgen configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexfield/internal/pipeline"
)

// ErrUnknownFormat reports an output format hexgen cannot write.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Config holds everything a hexgen run needs.
type Config struct {
	Render pipeline.Params `yaml:"render"`
	Output OutputConfig    `yaml:"output"`
}

// OutputConfig says where the image goes.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format Format `yaml:"format"` // png or svg; empty follows the path extension
}

// Default returns the editor's starting configuration writing hexmap.png.
func Default() *Config {
	return &Config{
		Render: pipeline.DefaultParams(),
		Output: OutputConfig{Path: "hexmap.png"},
	}
}

// Load reads configuration from a YAML file. Keys the file omits keep their
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if cfg.Output.Path == "" {
		cfg.Output.Path = "hexmap.png"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks render parameters and the output format.
func (c *Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if _, err := c.Output.ResolveFormat(); err != nil {
		return err
	}
	return nil
}

// ResolveFormat returns the explicit format, or the one implied by the path
// extension, defaulting to PNG.
func (o OutputConfig) ResolveFormat() (Format, error) {
	f := o.Format
	if f == "" {
		f = Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Path)), "."))
		if f == "" {
			f = FormatPNG
		}
	}
	switch f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Marshal encodes c as YAML, the inverse of Parse.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
