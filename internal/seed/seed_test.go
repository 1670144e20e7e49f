// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/mock"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ─────────────────────────────────────────────
// Default catalogue
// ─────────────────────────────────────────────

func TestDefault_EmbeddedCatalogue(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Len(t, c.Puzzles, 8)

	first := c.Puzzles[0]
	assert.Equal(t, "2025-11-01", first.Date)
	assert.Equal(t, "map", first.Answer)
	assert.Equal(t, "The Great Wall of China", first.Location)
	require.NotNil(t, first.Latitude)
	assert.Equal(t, "40.4319", *first.Latitude)
	assert.Zero(t, first.ID)

	assert.Equal(t, "2025-11-08", c.Puzzles[7].Date)
}

// ─────────────────────────────────────────────
// LoadFile / Parse
// ─────────────────────────────────────────────

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "puzzles.json", `{"puzzles":[
		{"date":"2025-12-01","question":"q","type":"riddle","answer":"echo","location":"Grand Canyon"}
	]}`)

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Puzzles, 1)
	assert.Equal(t, "echo", c.Puzzles[0].Answer)
	assert.Nil(t, c.Puzzles[0].Hint)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "puzzles.yml", `
puzzles:
  - date: "2025-12-02"
    question: "q"
    type: "riddle"
    answer: "candle"
    location: "Petra"
    hint: "It burns"
`)

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Puzzles, 1)
	require.NotNil(t, c.Puzzles[0].Hint)
	assert.Equal(t, "It burns", *c.Puzzles[0].Hint)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "puzzles.txt", "puzzles: []")

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte(`
puzzles:
  - date: "2025-12-02"
    question: "q"
    answer: "a"
    location: "l"
    difficulty: "hard"
`), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte(`{"puzzles":[],"extra":1}`), FormatJSON)
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestCatalogue_Validate(t *testing.T) {
	valid := models.Puzzle{Date: "2025-11-01", Question: "q", Answer: "a", Location: "l"}

	tests := []struct {
		name    string
		puzzles []models.Puzzle
		wantErr error
	}{
		{name: "valid", puzzles: []models.Puzzle{valid}},
		{name: "empty", puzzles: nil, wantErr: ErrEmptyCatalogue},
		{
			name:    "bad date",
			puzzles: []models.Puzzle{{Date: "2025-02-30", Question: "q", Answer: "a", Location: "l"}},
			wantErr: ErrInvalidPuzzle,
		},
		{
			name:    "blank answer",
			puzzles: []models.Puzzle{{Date: "2025-11-02", Question: "q", Answer: "  ", Location: "l"}},
			wantErr: ErrInvalidPuzzle,
		},
		{
			name:    "duplicate date",
			puzzles: []models.Puzzle{valid, valid},
			wantErr: ErrDuplicateDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Catalogue{Puzzles: tt.puzzles}.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Seeder
// ─────────────────────────────────────────────

func TestSeeder_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPuzzleRepository(ctrl)

	c, err := Default()
	require.NoError(t, err)

	repo.EXPECT().
		SavePuzzles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, puzzles ...models.Puzzle) (int, error) {
			assert.Len(t, puzzles, 8)
			return len(puzzles), nil
		})

	written, err := NewSeeder(repo, logger.Nop()).Seed(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 8, written)
}

func TestSeeder_Seed_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPuzzleRepository(ctrl)

	c, err := Default()
	require.NoError(t, err)

	repo.EXPECT().SavePuzzles(gomock.Any(), gomock.Any()).Return(0, store.ErrStoreUnavailable)

	_, err = NewSeeder(repo, logger.Nop()).Seed(context.Background(), c)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestSeeder_Seed_InvalidCatalogueSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPuzzleRepository(ctrl)

	_, err := NewSeeder(repo, logger.Nop()).Seed(context.Background(), Catalogue{})
	assert.True(t, errors.Is(err, ErrEmptyCatalogue))
}
