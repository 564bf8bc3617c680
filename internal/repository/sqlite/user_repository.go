package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, max_bins, interval_start_hours, algorithm, created_at, config_updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Config.MaxBins, &u.Config.IntervalStartHours,
		&u.Config.Algorithm, &u.CreatedAt, &u.ConfigUpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: id=%d", id)

	u, err := scanUser(r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = ?
`, id))
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	if u == nil {
		log.Debug("user not found: id=%d", id)
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: username=%s", username)

	u, err := scanUser(r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE username = ?
`, username))
	if err != nil {
		log.Error("failed to get user by username: %v", err)
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Insert(ctx context.Context, username string, cfg models.SchedulerConfig) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("inserting user: username=%s", username)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, max_bins, interval_start_hours, algorithm)
VALUES (?, ?, ?, ?)
`, username, cfg.MaxBins, cfg.IntervalStartHours, cfg.Algorithm)
	if err != nil {
		log.Error("failed to insert user: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get user id: %v", err)
		return nil, err
	}
	log.Debug("user inserted: id=%d", id)
	return r.Get(ctx, id)
}

func (r *userRepository) UpdateConfigWithRecompute(ctx context.Context, userID int64, cfg models.SchedulerConfig, recompute func(models.LearningItem) (models.LearningItem, bool)) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("recomputing schedule: user_id=%d, max_bins=%d, interval_start=%d", userID, cfg.MaxBins, cfg.IntervalStartHours)

	updated := 0
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		var exists int64
		if err := t.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, userID).Scan(&exists); err != nil {
			return err
		}

		// Read the full item set before writing; a Tx holds a single
		// connection, so updates cannot run while the rows are open.
		items, err := scanItemsTx(ctx, t, userID)
		if err != nil {
			return err
		}

		for _, item := range items {
			next, changed := recompute(item)
			if !changed {
				continue
			}
			if _, err := t.ExecContext(ctx, `
UPDATE items
SET bin = ?, next_review_at = ?
WHERE id = ?
`, next.Bin, nullableTime(next.NextReviewAt), next.ID); err != nil {
				return err
			}
			updated++
		}

		_, err = t.ExecContext(ctx, `
UPDATE users
SET max_bins = ?, interval_start_hours = ?, algorithm = ?, config_updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, cfg.MaxBins, cfg.IntervalStartHours, cfg.Algorithm, userID)
		return err
	})
	if err != nil {
		log.Error("schedule recompute failed: %v", err)
		return 0, err
	}
	log.Debug("schedule recompute complete: %d items rewritten", updated)
	return updated, nil
}

func scanItemsTx(ctx context.Context, t *sql.Tx, userID int64) ([]models.LearningItem, error) {
	rows, err := t.QueryContext(ctx, `
SELECT `+itemColumns+`
FROM items
WHERE user_id = ?
ORDER BY id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.LearningItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
