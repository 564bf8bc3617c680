package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository implementation
func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, user_id, concept_id, language_code, bin, last_review_time, next_review_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.LearningItem, error) {
	var item models.LearningItem
	var lastReview, nextReview sql.NullTime
	err := row.Scan(&item.ID, &item.UserID, &item.ConceptID, &item.LanguageCode,
		&item.Bin, &lastReview, &nextReview, &item.CreatedAt)
	if err != nil {
		return item, err
	}
	if lastReview.Valid {
		t := lastReview.Time
		item.LastReviewTime = &t
	}
	if nextReview.Valid {
		t := nextReview.Time
		item.NextReviewAt = &t
	}
	return item, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func (r *itemRepository) Get(ctx context.Context, userID int64, conceptID, languageCode string) (*models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("getting item: user_id=%d, concept_id=%s, language=%s", userID, conceptID, languageCode)

	item, err := scanItem(r.db.QueryRowContext(ctx, `
SELECT `+itemColumns+`
FROM items
WHERE user_id = ? AND concept_id = ? AND language_code = ?
`, userID, conceptID, languageCode))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("item not found: concept_id=%s", conceptID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get item: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Insert(ctx context.Context, item models.LearningItem) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting item: user_id=%d, concept_id=%s, language=%s", item.UserID, item.ConceptID, item.LanguageCode)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO items (user_id, concept_id, language_code, bin, last_review_time, next_review_at)
VALUES (?, ?, ?, ?, ?, ?)
`, item.UserID, item.ConceptID, item.LanguageCode, item.Bin,
		nullableTime(item.LastReviewTime), nullableTime(item.NextReviewAt))
	if err != nil {
		log.Error("failed to insert item: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get item id: %v", err)
		return 0, err
	}
	log.Debug("item inserted: id=%d", id)
	return id, nil
}

func (r *itemRepository) InsertBatch(ctx context.Context, items []models.LearningItem) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting item batch: %d items", len(items))

	inserted := 0
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		for _, item := range items {
			res, err := t.ExecContext(ctx, `
INSERT OR IGNORE INTO items (user_id, concept_id, language_code, bin)
VALUES (?, ?, ?, ?)
`, item.UserID, item.ConceptID, item.LanguageCode, item.Bin)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert item batch: %v", err)
		return 0, err
	}
	log.Debug("item batch inserted: %d new, %d skipped", inserted, len(items)-inserted)
	return inserted, nil
}

func (r *itemRepository) UpdateScheduling(ctx context.Context, item models.LearningItem) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("updating item scheduling: id=%d, bin=%d", item.ID, item.Bin)

	// All three scheduling fields in one statement so no reader can observe
	// the new bin paired with a stale due date.
	res, err := r.db.ExecContext(ctx, `
UPDATE items
SET bin = ?, last_review_time = ?, next_review_at = ?
WHERE id = ?
`, item.Bin, nullableTime(item.LastReviewTime), nullableTime(item.NextReviewAt), item.ID)
	if err != nil {
		log.Error("failed to update item: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		log.Debug("item vanished before write: id=%d", item.ID)
		return false, nil
	}
	return true, nil
}

func (r *itemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("listing items: user_id=%d, language=%s", filter.UserID, filter.LanguageCode)

	query := sqlBuilder.Select(
		"id", "user_id", "concept_id", "language_code", "bin",
		"last_review_time", "next_review_at", "created_at",
	).From("items")

	// Dynamic WHERE clauses
	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.LanguageCode != "" {
		query = query.Where(squirrel.Eq{"language_code": filter.LanguageCode})
	}
	if filter.DueBefore != nil {
		query = query.Where(squirrel.NotEq{"next_review_at": nil})
		query = query.Where(squirrel.LtOrEq{"next_review_at": *filter.DueBefore})
		query = query.OrderBy("next_review_at ASC")
	} else {
		query = query.OrderBy("id ASC")
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build item query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.LearningItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Error("failed to scan item row: %v", err)
			return nil, err
		}
		items = append(items, item)
	}
	log.Debug("found %d items", len(items))
	return items, rows.Err()
}

func (r *itemRepository) DistributionCounts(ctx context.Context, userID int64, languageCode string, now time.Time) ([]models.BinCount, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("counting distribution: user_id=%d, language=%s", userID, languageCode)

	rows, err := r.db.QueryContext(ctx, `
SELECT bin,
       SUM(CASE WHEN next_review_at IS NOT NULL AND next_review_at <= ? THEN 1 ELSE 0 END) AS count_due,
       SUM(CASE WHEN next_review_at IS NULL OR next_review_at > ? THEN 1 ELSE 0 END) AS count_not_due
FROM items
WHERE user_id = ? AND language_code = ?
GROUP BY bin
ORDER BY bin
`, now, now, userID, languageCode)
	if err != nil {
		log.Error("failed to query distribution: %v", err)
		return nil, err
	}
	defer rows.Close()

	var counts []models.BinCount
	for rows.Next() {
		var c models.BinCount
		if err := rows.Scan(&c.Bin, &c.CountDue, &c.CountNotDue); err != nil {
			log.Error("failed to scan distribution row: %v", err)
			return nil, err
		}
		counts = append(counts, c)
	}
	log.Debug("distribution spans %d occupied bins", len(counts))
	return counts, rows.Err()
}

func (r *itemRepository) InsertReviewHistory(ctx context.Context, itemID int64, outcome models.ReviewOutcome, binBefore, binAfter int, reviewedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting review history: item_id=%d, outcome=%s", itemID, outcome)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (item_id, outcome, bin_before, bin_after, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, itemID, outcome, binBefore, binAfter, reviewedAt)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
	}
	return err
}
