package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/planfit/backend/internal/domain"
)

// ListFoods returns catalog foods matching the filter, in insertion order
func (d *DB) ListFoods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodItem, error) {
	query := `SELECT id, name, local_name, category, serving_size, calories,
		protein_g, carbs_g, fats_g, estimated_cost, locally_common, tags
		FROM foods`

	var conds []string
	var args []interface{}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			placeholders[i] = "?"
			args = append(args, string(c))
		}
		conds = append(conds, fmt.Sprintf("category IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.LocallyCommon {
		conds = append(conds, "locally_common = 1")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rowid"

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying foods: %w", err)
	}
	defer rows.Close()

	var foods []domain.FoodItem
	for rows.Next() {
		var f domain.FoodItem
		var cost sql.NullFloat64
		var common int
		var tags string
		if err := rows.Scan(&f.ID, &f.Name, &f.LocalName, &f.Category, &f.ServingSize,
			&f.Calories, &f.ProteinG, &f.CarbsG, &f.FatsG, &cost, &common, &tags); err != nil {
			return nil, fmt.Errorf("scanning food row: %w", err)
		}
		if cost.Valid {
			f.EstimatedCost = &cost.Float64
		}
		f.LocallyCommon = common == 1
		if err := json.Unmarshal([]byte(tags), &f.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for food %s: %w", f.ID, err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// InsertFood adds one food to the catalog
func (d *DB) InsertFood(ctx context.Context, f domain.FoodItem) error {
	tags, err := json.Marshal(tagsOrEmpty(f.Tags))
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	var cost interface{}
	if f.EstimatedCost != nil {
		cost = *f.EstimatedCost
	}

	_, err = d.db.ExecContext(ctx, `INSERT INTO foods
		(id, name, local_name, category, serving_size, calories,
		 protein_g, carbs_g, fats_g, estimated_cost, locally_common, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.LocalName, string(f.Category), f.ServingSize, f.Calories,
		f.ProteinG, f.CarbsG, f.FatsG, cost, boolToInt(f.LocallyCommon), string(tags))
	if err != nil {
		return fmt.Errorf("inserting food %s: %w", f.Name, err)
	}
	return nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
