package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wordbin/wordbin/internal/db"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
	"github.com/wordbin/wordbin/internal/repository/sqlite"
	"github.com/wordbin/wordbin/internal/testutil"
)

type ItemRepositorySuite struct {
	suite.Suite
	db    *db.DB
	repo  repository.ItemRepository
	users repository.UserRepository
}

func (s *ItemRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewItemRepository(s.db.DB)
	s.users = sqlite.NewUserRepository(s.db.DB)
}

func (s *ItemRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ItemRepositorySuite) setupUser() int64 {
	user, err := s.users.Insert(context.Background(), "testuser", models.DefaultSchedulerConfig())
	s.Require().NoError(err)
	return user.ID
}

func (s *ItemRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	userID := s.setupUser()

	id, err := s.repo.Insert(ctx, models.LearningItem{
		UserID:       userID,
		ConceptID:    "haus",
		LanguageCode: "de",
		Bin:          1,
	})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	item, err := s.repo.Get(ctx, userID, "haus", "de")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal(1, item.Bin)
	s.Assert().Nil(item.LastReviewTime, "new item must not have a review time")
	s.Assert().Nil(item.NextReviewAt, "new item must not be scheduled")
}

func (s *ItemRepositorySuite) TestGet_Missing() {
	ctx := context.Background()
	userID := s.setupUser()

	item, err := s.repo.Get(ctx, userID, "unknown", "de")
	s.Require().NoError(err)
	s.Assert().Nil(item)
}

func (s *ItemRepositorySuite) TestInsertBatch_SkipsExisting() {
	ctx := context.Background()
	userID := s.setupUser()

	_, err := s.repo.Insert(ctx, models.LearningItem{UserID: userID, ConceptID: "haus", LanguageCode: "de", Bin: 1})
	s.Require().NoError(err)

	inserted, err := s.repo.InsertBatch(ctx, []models.LearningItem{
		{UserID: userID, ConceptID: "haus", LanguageCode: "de", Bin: 1},
		{UserID: userID, ConceptID: "baum", LanguageCode: "de", Bin: 1},
		{UserID: userID, ConceptID: "haus", LanguageCode: "fr", Bin: 1},
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, inserted, "existing (user, concept, language) triples are skipped")
}

func (s *ItemRepositorySuite) TestUpdateScheduling() {
	ctx := context.Background()
	userID := s.setupUser()

	id, err := s.repo.Insert(ctx, models.LearningItem{UserID: userID, ConceptID: "haus", LanguageCode: "de", Bin: 1})
	s.Require().NoError(err)

	reviewed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	due := reviewed.Add(6 * time.Hour)
	ok, err := s.repo.UpdateScheduling(ctx, models.LearningItem{
		ID:             id,
		Bin:            2,
		LastReviewTime: &reviewed,
		NextReviewAt:   &due,
	})
	s.Require().NoError(err)
	s.Assert().True(ok)

	item, err := s.repo.Get(ctx, userID, "haus", "de")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal(2, item.Bin)
	s.Require().NotNil(item.LastReviewTime)
	s.Assert().True(item.LastReviewTime.Equal(reviewed))
	s.Require().NotNil(item.NextReviewAt)
	s.Assert().True(item.NextReviewAt.Equal(due))
}

func (s *ItemRepositorySuite) TestUpdateScheduling_VanishedItem() {
	ctx := context.Background()
	userID := s.setupUser()

	id, err := s.repo.Insert(ctx, models.LearningItem{UserID: userID, ConceptID: "haus", LanguageCode: "de", Bin: 1})
	s.Require().NoError(err)

	// Simulate the owning concept being removed between read and write.
	_, err = s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	s.Require().NoError(err)

	now := time.Now()
	ok, err := s.repo.UpdateScheduling(ctx, models.LearningItem{ID: id, Bin: 2, LastReviewTime: &now, NextReviewAt: &now})
	s.Require().NoError(err)
	s.Assert().False(ok, "writing a vanished item must be a no-op, not an error")
}

func (s *ItemRepositorySuite) TestList_DueFilter() {
	ctx := context.Background()
	userID := s.setupUser()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	for _, fixture := range []struct {
		concept string
		due     *time.Time
	}{
		{"due-item", &past},
		{"not-due-item", &future},
		{"new-item", nil},
	} {
		id, err := s.repo.Insert(ctx, models.LearningItem{
			UserID: userID, ConceptID: fixture.concept, LanguageCode: "de", Bin: 1,
		})
		s.Require().NoError(err)
		if fixture.due != nil {
			_, err = s.db.ExecContext(ctx, `UPDATE items SET last_review_time = ?, next_review_at = ? WHERE id = ?`, past, *fixture.due, id)
			s.Require().NoError(err)
		}
	}

	items, err := s.repo.List(ctx, models.ItemFilter{UserID: userID, LanguageCode: "de", DueBefore: &now})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Assert().Equal("due-item", items[0].ConceptID)

	all, err := s.repo.List(ctx, models.ItemFilter{UserID: userID, LanguageCode: "de"})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)
}

func (s *ItemRepositorySuite) TestDistributionCounts() {
	ctx := context.Background()
	userID := s.setupUser()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	fixtures := []struct {
		concept string
		bin     int
		due     *time.Time
	}{
		{"a", 1, &past},
		{"b", 1, &future},
		{"c", 1, nil}, // never reviewed: counts as not due
		{"d", 3, &past},
		{"e", 3, &past},
	}
	for _, f := range fixtures {
		id, err := s.repo.Insert(ctx, models.LearningItem{UserID: userID, ConceptID: f.concept, LanguageCode: "de", Bin: f.bin})
		s.Require().NoError(err)
		if f.due != nil {
			_, err = s.db.ExecContext(ctx, `UPDATE items SET bin = ?, last_review_time = ?, next_review_at = ? WHERE id = ?`, f.bin, past, *f.due, id)
			s.Require().NoError(err)
		}
	}

	counts, err := s.repo.DistributionCounts(ctx, userID, "de", now)
	s.Require().NoError(err)
	s.Require().Len(counts, 2, "only occupied bins are returned by the store")

	s.Assert().Equal(models.BinCount{Bin: 1, CountDue: 1, CountNotDue: 2}, counts[0])
	s.Assert().Equal(models.BinCount{Bin: 3, CountDue: 2, CountNotDue: 0}, counts[1])

	for _, c := range counts {
		s.Assert().Equal(c.Count(), c.CountDue+c.CountNotDue)
	}

	// Different language: nothing.
	counts, err = s.repo.DistributionCounts(ctx, userID, "fr", now)
	s.Require().NoError(err)
	s.Assert().Empty(counts)
}

func (s *ItemRepositorySuite) TestInsertReviewHistory() {
	ctx := context.Background()
	userID := s.setupUser()

	id, err := s.repo.Insert(ctx, models.LearningItem{UserID: userID, ConceptID: "haus", LanguageCode: "de", Bin: 1})
	s.Require().NoError(err)

	err = s.repo.InsertReviewHistory(ctx, id, models.OutcomeCorrect, 1, 2, time.Now())
	s.Require().NoError(err)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_history WHERE item_id = ?`, id).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func TestItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ItemRepositorySuite))
}
