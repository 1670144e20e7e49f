// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

var (
	userColumns = []string{
		"id", "open_id", "name", "email", "login_method", "role",
		"created_at", "updated_at", "last_signed_in",
	}

	puzzleColumns = []string{
		"id", "date", "question", "type", "answer", "location",
		"latitude", "longitude", "hint", "created_at", "updated_at",
	}

	progressColumns = []string{
		"id", "user_id", "puzzle_id", "solved", "solved_at", "attempts",
		"created_at", "updated_at",
	}
)

// buildUpsertUserQuery builds an INSERT ... ON CONFLICT (open_id) statement.
//
// Only supplied fields are written on conflict. A pointer to an empty string
// clears the column. When no role is supplied and openID equals ownerOpenID
// the role is forced to admin. last_signed_in defaults to now and is always
// refreshed when nothing else would be.
func buildUpsertUserQuery(builder sq.StatementBuilderType, user models.UpsertUser, ownerOpenID string, now time.Time) (string, []any, error) {
	values := map[string]any{"open_id": user.OpenID}
	updateSet := make([]string, 0, 6)

	assignNullable := func(column string, value *string) {
		if value == nil {
			return
		}
		var normalized any
		if *value != "" {
			normalized = *value
		}
		values[column] = normalized
		updateSet = append(updateSet, column)
	}

	assignNullable("name", user.Name)
	assignNullable("email", user.Email)
	assignNullable("login_method", user.LoginMethod)

	if user.LastSignedIn != nil {
		values["last_signed_in"] = *user.LastSignedIn
		updateSet = append(updateSet, "last_signed_in")
	}

	switch {
	case user.Role != nil:
		if !user.Role.Valid() {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidRole, *user.Role)
		}
		values["role"] = string(*user.Role)
		updateSet = append(updateSet, "role")
	case ownerOpenID != "" && user.OpenID == ownerOpenID:
		values["role"] = string(models.RoleAdmin)
		updateSet = append(updateSet, "role")
	}

	if _, ok := values["last_signed_in"]; !ok {
		values["last_signed_in"] = now
	}
	if len(updateSet) == 0 {
		updateSet = append(updateSet, "last_signed_in")
	}

	sets := make([]string, 0, len(updateSet)+1)
	for _, column := range updateSet {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	return builder.
		Insert("users").
		SetMap(values).
		Suffix("ON CONFLICT (open_id) DO UPDATE SET " + strings.Join(sets, ", ")).
		ToSql()
}

func buildSelectUserByOpenIDQuery(builder sq.StatementBuilderType, openID string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"open_id": openID}).
		Limit(1).
		ToSql()
}

func buildSelectPuzzleQuery(builder sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return builder.
		Select(puzzleColumns...).
		From("puzzles").
		Where(where).
		Limit(1).
		ToSql()
}

func buildSelectAllPuzzlesQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.
		Select(puzzleColumns...).
		From("puzzles").
		OrderBy("date ASC").
		ToSql()
}

// buildUpsertPuzzleQuery replaces the content of the puzzle scheduled on the
// same date.
func buildUpsertPuzzleQuery(builder sq.StatementBuilderType, puzzle models.Puzzle) (string, []any, error) {
	return builder.
		Insert("puzzles").
		Columns("date", "question", "type", "answer", "location", "latitude", "longitude", "hint").
		Values(puzzle.Date, puzzle.Question, puzzle.Type, puzzle.Answer, puzzle.Location,
			nullableString(puzzle.Latitude), nullableString(puzzle.Longitude), nullableString(puzzle.Hint)).
		Suffix("ON CONFLICT (date) DO UPDATE SET " +
			"question = EXCLUDED.question, type = EXCLUDED.type, answer = EXCLUDED.answer, " +
			"location = EXCLUDED.location, latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude, " +
			"hint = EXCLUDED.hint, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildSelectProgressQuery(builder sq.StatementBuilderType, userID, puzzleID int64) (string, []any, error) {
	return builder.
		Select(progressColumns...).
		From("user_progress").
		Where(sq.Eq{"user_id": userID, "puzzle_id": puzzleID}).
		Limit(1).
		ToSql()
}

// buildSelectProgressByMonthQuery selects the user's progress on puzzles
// dated between the first and the last day of the month, both inclusive.
func buildSelectProgressByMonthQuery(builder sq.StatementBuilderType, userID int64, month models.MonthRequest) (string, []any, error) {
	first, last := month.Range()

	columns := make([]string, 0, len(progressColumns))
	for _, column := range progressColumns {
		columns = append(columns, "up."+column)
	}

	return builder.
		Select(columns...).
		From("user_progress up").
		Join("puzzles p ON p.id = up.puzzle_id").
		Where(sq.Eq{"up.user_id": userID}).
		Where(sq.GtOrEq{"p.date": first}).
		Where(sq.LtOrEq{"p.date": last}).
		OrderBy("p.date ASC").
		ToSql()
}

// buildUpsertProgressQuery records one submission in a single statement:
// the first submission inserts attempts = 1, later ones add one to the
// stored count and overwrite solved and solved_at.
func buildUpsertProgressQuery(builder sq.StatementBuilderType, userID, puzzleID int64, solved bool, now time.Time) (string, []any, error) {
	var solvedAt any
	if solved {
		solvedAt = now
	}

	return builder.
		Insert("user_progress").
		Columns("user_id", "puzzle_id", "solved", "solved_at", "attempts").
		Values(userID, puzzleID, boolToInt(solved), solvedAt, 1).
		Suffix("ON CONFLICT (user_id, puzzle_id) DO UPDATE SET " +
			"attempts = user_progress.attempts + 1, solved = EXCLUDED.solved, " +
			"solved_at = EXCLUDED.solved_at, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
