package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (user_id, name, type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, type, description, created_at
	`

	err := r.db.GetContext(ctx, location, query,
		location.UserID,
		location.Name,
		location.Type,
		location.Description,
	)
	if err != nil {
		return wrapError("failed to create location", err)
	}

	return nil
}

// ListWithMessageCount returns every location, newest first, with the number
// of messages posted in it. Rooms without messages report zero.
func (r *locationRepository) ListWithMessageCount(ctx context.Context) ([]models.LocationSummary, error) {
	query := `
		SELECT l.id, l.user_id, l.name, l.type, l.description, l.created_at,
		       COUNT(m.id) AS message_count
		FROM locations l
		LEFT JOIN messages m ON m.location_id = l.id
		GROUP BY l.id
		ORDER BY l.created_at DESC
	`

	locations := []models.LocationSummary{}
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return locations, nil
}
