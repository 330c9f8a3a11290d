package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/planfit/backend/internal/domain"
)

// Get returns the stored profile for id, or ErrProfileNotFound
func (d *DB) Get(ctx context.Context, id string) (*domain.Profile, error) {
	row := d.db.QueryRowContext(ctx, `SELECT id, age, sex, weight_kg, height_cm,
		activity_level, goal, weekly_frequency, equipment, updated_at
		FROM profiles WHERE id = ?`, id)

	var p domain.Profile
	var equipment string
	if err := row.Scan(&p.ID, &p.Age, &p.Sex, &p.WeightKg, &p.HeightCm,
		&p.ActivityLevel, &p.Goal, &p.WeeklyFrequency, &equipment, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("querying profile %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(equipment), &p.Equipment); err != nil {
		return nil, fmt.Errorf("decoding equipment for profile %s: %w", id, err)
	}
	return &p, nil
}

// Save upserts the profile, stamping UpdatedAt
func (d *DB) Save(ctx context.Context, p *domain.Profile) error {
	equipment, err := json.Marshal(tagsOrEmpty(p.Equipment))
	if err != nil {
		return fmt.Errorf("encoding equipment: %w", err)
	}

	p.UpdatedAt = time.Now().UTC()
	_, err = d.db.ExecContext(ctx, `INSERT INTO profiles
		(id, age, sex, weight_kg, height_cm, activity_level, goal,
		 weekly_frequency, equipment, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			age = excluded.age,
			sex = excluded.sex,
			weight_kg = excluded.weight_kg,
			height_cm = excluded.height_cm,
			activity_level = excluded.activity_level,
			goal = excluded.goal,
			weekly_frequency = excluded.weekly_frequency,
			equipment = excluded.equipment,
			updated_at = excluded.updated_at`,
		p.ID, p.Age, string(p.Sex), p.WeightKg, p.HeightCm,
		string(p.ActivityLevel), string(p.Goal), p.WeeklyFrequency,
		string(equipment), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", p.ID, err)
	}
	return nil
}
