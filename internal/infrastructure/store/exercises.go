package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/planfit/backend/internal/domain"
)

// ListExercises returns catalog exercises matching the filter. Category and
// difficulty are filtered in SQL; the muscle-group and equipment-subset
// checks happen in Go because both live in JSON array columns.
func (d *DB) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	query := `SELECT id, name, category, muscle_groups, equipment, difficulty,
		instructions, tips FROM exercises`

	var conds []string
	var args []interface{}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Difficulty != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rowid"

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		var muscles, equipment string
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &muscles, &equipment,
			&e.Difficulty, &e.Instructions, &e.Tips); err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		if err := json.Unmarshal([]byte(muscles), &e.MuscleGroups); err != nil {
			return nil, fmt.Errorf("decoding muscle groups for %s: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(equipment), &e.Equipment); err != nil {
			return nil, fmt.Errorf("decoding equipment for %s: %w", e.ID, err)
		}

		if filter.MuscleGroup != "" && !containsTag(e.MuscleGroups, filter.MuscleGroup) {
			continue
		}
		if len(filter.Equipment) > 0 && !equipmentAvailable(e.Equipment, filter.Equipment) {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// InsertExercise adds one exercise to the catalog
func (d *DB) InsertExercise(ctx context.Context, e domain.Exercise) error {
	muscles, err := json.Marshal(tagsOrEmpty(e.MuscleGroups))
	if err != nil {
		return fmt.Errorf("encoding muscle groups: %w", err)
	}
	equipment, err := json.Marshal(tagsOrEmpty(e.Equipment))
	if err != nil {
		return fmt.Errorf("encoding equipment: %w", err)
	}

	_, err = d.db.ExecContext(ctx, `INSERT INTO exercises
		(id, name, category, muscle_groups, equipment, difficulty, instructions, tips)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, string(e.Category), string(muscles), string(equipment),
		string(e.Difficulty), e.Instructions, e.Tips)
	if err != nil {
		return fmt.Errorf("inserting exercise %s: %w", e.Name, err)
	}
	return nil
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// equipmentAvailable reports whether every piece of required equipment is
// in the available set. Bodyweight exercises (no requirements) always pass.
func equipmentAvailable(required, available []string) bool {
	for _, req := range required {
		if !containsTag(available, req) {
			return false
		}
	}
	return true
}
