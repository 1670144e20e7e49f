// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed loads puzzle catalogues and writes them to the store.
//
// A catalogue is a YAML or JSON document with a top-level "puzzles" list.
// The November 2025 catalogue is embedded and used when no file is given.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/internal/validators"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

//go:embed puzzles.yaml
var defaultCatalogue []byte

var (
	ErrUnsupportedFormat = errors.New("unsupported catalogue format")
	ErrEmptyCatalogue    = errors.New("catalogue has no puzzles")
	ErrInvalidPuzzle     = errors.New("invalid puzzle in catalogue")
	ErrDuplicateDate     = errors.New("duplicate puzzle date in catalogue")
)

// Format of a catalogue document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type Catalogue struct {
	Puzzles []models.Puzzle `yaml:"puzzles" json:"puzzles"`
}

// Default returns the embedded catalogue.
func Default() (Catalogue, error) {
	return Parse(defaultCatalogue, FormatYAML)
}

// LoadFile reads a catalogue, choosing the format by file extension.
func LoadFile(path string) (Catalogue, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return Catalogue{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("error reading catalogue: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes and validates a catalogue. Unknown fields are rejected.
func Parse(data []byte, format Format) (Catalogue, error) {
	var c Catalogue

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&c); err != nil {
			return Catalogue{}, fmt.Errorf("error decoding YAML catalogue: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return Catalogue{}, fmt.Errorf("error decoding JSON catalogue: %w", err)
		}
	default:
		return Catalogue{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := c.Validate(); err != nil {
		return Catalogue{}, err
	}

	return c, nil
}

// Validate checks that every puzzle has a calendar date, a question, an
// answer and a location, and that no date repeats.
func (c Catalogue) Validate() error {
	if len(c.Puzzles) == 0 {
		return ErrEmptyCatalogue
	}

	v := validators.NewPuzzleValidator()
	seen := make(map[string]struct{}, len(c.Puzzles))

	for i, p := range c.Puzzles {
		if err := v.Validate(context.Background(), models.DateRequest{Date: p.Date}); err != nil {
			return fmt.Errorf("%w: puzzle #%d: %w", ErrInvalidPuzzle, i+1, err)
		}
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" || p.Location == "" {
			return fmt.Errorf("%w: puzzle %s: question, answer and location are required", ErrInvalidPuzzle, p.Date)
		}
		if _, ok := seen[p.Date]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateDate, p.Date)
		}
		seen[p.Date] = struct{}{}
	}

	return nil
}

// Seeder writes catalogues to the puzzle repository.
type Seeder struct {
	puzzleRepository store.PuzzleRepository
	logger           *logger.Logger
}

func NewSeeder(puzzleRepository store.PuzzleRepository, logger *logger.Logger) *Seeder {
	return &Seeder{
		puzzleRepository: puzzleRepository,
		logger:           logger,
	}
}

// Seed upserts the puzzles of c by date and returns the number written.
func (s *Seeder) Seed(ctx context.Context, c Catalogue) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	written, err := s.puzzleRepository.SavePuzzles(ctx, c.Puzzles...)
	if err != nil {
		s.logger.Err(err).Str("func", "*Seeder.Seed").Int("puzzles", len(c.Puzzles)).Msg("seeding failed")
		return 0, fmt.Errorf("seeding failed: %w", err)
	}

	s.logger.Info().
		Int("puzzles", written).
		Str("first", c.Puzzles[0].Date).
		Str("last", c.Puzzles[len(c.Puzzles)-1].Date).
		Msg("puzzles seeded")

	return written, nil
}
