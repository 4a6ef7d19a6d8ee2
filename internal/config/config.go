// Package config holds the run options for a stocksheet invocation and the
// validation that gates the rest of the pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fatal configuration conditions. Any of these abort the run before output
// is produced.
var (
	ErrInputMissing    = errors.New("input directory does not exist")
	ErrInputNotDir     = errors.New("input path is not a directory")
	ErrBadThumbSize    = errors.New("thumb size must be a positive number of pixels")
	ErrBadWorkerCount  = errors.New("workers must be at least 1")
	ErrOutputIsDir     = errors.New("output path is a directory")
	ErrEmptyOutputPath = errors.New("output path must not be empty")
)

// Defaults applied before any config file, env var, or flag is considered.
const (
	DefaultInput     = "./images"
	DefaultOutput    = "./inventory_audit.xlsx"
	DefaultThumbSize = 160
	DefaultWorkers   = 1
)

// Options describes one generate run. Fields carry yaml tags so a run can be
// captured in (and replayed from) a config file.
type Options struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	ThumbSize   int    `yaml:"thumb_size"`
	Timestamped bool   `yaml:"timestamped"`
	Recursive   bool   `yaml:"recursive"`
	Workers     int    `yaml:"workers"`
	Manifest    string `yaml:"manifest,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
}

// NewOptions returns Options populated with defaults and env fallbacks.
// STOCKSHEET_INPUT and STOCKSHEET_OUTPUT override the built-in defaults so
// audits run from a fixed station don't need flags every time.
func NewOptions() Options {
	opts := Options{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		ThumbSize: DefaultThumbSize,
		Workers:   DefaultWorkers,
	}
	if v := os.Getenv("STOCKSHEET_INPUT"); v != "" {
		opts.Input = v
	}
	if v := os.Getenv("STOCKSHEET_OUTPUT"); v != "" {
		opts.Output = v
	}
	return opts
}

// LoadFile overlays values from a YAML config file onto opts. Zero values in
// the file leave the existing option untouched, so a partial file is fine.
func (o *Options) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file Options
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.Input != "" {
		o.Input = file.Input
	}
	if file.Output != "" {
		o.Output = file.Output
	}
	if file.ThumbSize != 0 {
		o.ThumbSize = file.ThumbSize
	}
	if file.Workers != 0 {
		o.Workers = file.Workers
	}
	if file.Manifest != "" {
		o.Manifest = file.Manifest
	}
	if file.Timestamped {
		o.Timestamped = true
	}
	if file.Recursive {
		o.Recursive = true
	}
	if file.Verbose {
		o.Verbose = true
	}
	return nil
}

// Validate checks the options against the filesystem. It returns the first
// fatal condition found, wrapped with enough context to be actionable.
func (o *Options) Validate() error {
	info, err := os.Stat(o.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputMissing, o.Input)
		}
		return fmt.Errorf("cannot access input directory %s: %w", o.Input, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotDir, o.Input)
	}

	if o.ThumbSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadThumbSize, o.ThumbSize)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkerCount, o.Workers)
	}

	if o.Output == "" {
		return ErrEmptyOutputPath
	}
	if info, err := os.Stat(o.Output); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, o.Output)
	}

	return nil
}
