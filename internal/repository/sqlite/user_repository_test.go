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
	"github.com/wordbin/wordbin/internal/scheduler"
	"github.com/wordbin/wordbin/internal/testutil"
)

type UserRepositorySuite struct {
	suite.Suite
	db    *db.DB
	repo  repository.UserRepository
	items repository.ItemRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db.DB)
	s.items = sqlite.NewItemRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	user, err := s.repo.Insert(ctx, "anna", models.DefaultSchedulerConfig())
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Assert().Equal("anna", user.Username)
	s.Assert().Equal(models.DefaultMaxBins, user.Config.MaxBins)
	s.Assert().Equal(models.DefaultIntervalStart, user.Config.IntervalStartHours)
	s.Assert().Equal(models.AlgorithmFibonacci, user.Config.Algorithm)

	got, err := s.repo.Get(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(user.ID, got.ID)

	byName, err := s.repo.GetByUsername(ctx, "anna")
	s.Require().NoError(err)
	s.Require().NotNil(byName)
	s.Assert().Equal(user.ID, byName.ID)
}

func (s *UserRepositorySuite) TestGet_Missing() {
	ctx := context.Background()

	got, err := s.repo.Get(ctx, 9999)
	s.Require().NoError(err)
	s.Assert().Nil(got)

	byName, err := s.repo.GetByUsername(ctx, "nobody")
	s.Require().NoError(err)
	s.Assert().Nil(byName)
}

func (s *UserRepositorySuite) seedItems(userID int64, reviewed time.Time) []int64 {
	ctx := context.Background()
	cfg := models.DefaultSchedulerConfig()

	var ids []int64
	for i, concept := range []string{"haus", "baum", "katze"} {
		id, err := s.items.Insert(ctx, models.LearningItem{
			UserID: userID, ConceptID: concept, LanguageCode: "de", Bin: 1,
		})
		s.Require().NoError(err)
		ids = append(ids, id)

		bin := 2 + i*3 // bins 2, 5, 8
		due := reviewed.Add(time.Duration(scheduler.Interval(bin, cfg)) * time.Hour)
		_, err = s.db.ExecContext(ctx, `UPDATE items SET bin = ?, last_review_time = ?, next_review_at = ? WHERE id = ?`, bin, reviewed, due, id)
		s.Require().NoError(err)
	}
	return ids
}

func (s *UserRepositorySuite) TestUpdateConfigWithRecompute() {
	ctx := context.Background()
	reviewed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	user, err := s.repo.Insert(ctx, "anna", models.DefaultSchedulerConfig())
	s.Require().NoError(err)
	s.seedItems(user.ID, reviewed)

	newCfg := models.SchedulerConfig{MaxBins: 5, IntervalStartHours: 12, Algorithm: models.AlgorithmFibonacci}
	updated, err := s.repo.UpdateConfigWithRecompute(ctx, user.ID, newCfg, func(item models.LearningItem) (models.LearningItem, bool) {
		return scheduler.Recompute(item, newCfg)
	})
	s.Require().NoError(err)
	s.Assert().Equal(3, updated, "every item changes interval under the new start")

	got, err := s.repo.Get(ctx, user.ID)
	s.Require().NoError(err)
	s.Assert().Equal(5, got.Config.MaxBins)
	s.Assert().Equal(12, got.Config.IntervalStartHours)

	// The bin-8 item is clamped to the new ceiling and rescheduled from its
	// unchanged last review time.
	item, err := s.items.Get(ctx, user.ID, "katze", "de")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal(5, item.Bin)
	s.Require().NotNil(item.LastReviewTime)
	s.Assert().True(item.LastReviewTime.Equal(reviewed))
	want := reviewed.Add(time.Duration(scheduler.Interval(5, newCfg)) * time.Hour)
	s.Require().NotNil(item.NextReviewAt)
	s.Assert().True(item.NextReviewAt.Equal(want))
}

func (s *UserRepositorySuite) TestUpdateConfigWithRecompute_Idempotent() {
	ctx := context.Background()
	reviewed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	user, err := s.repo.Insert(ctx, "anna", models.DefaultSchedulerConfig())
	s.Require().NoError(err)
	s.seedItems(user.ID, reviewed)

	newCfg := models.SchedulerConfig{MaxBins: 5, IntervalStartHours: 12, Algorithm: models.AlgorithmFibonacci}
	recompute := func(item models.LearningItem) (models.LearningItem, bool) {
		return scheduler.Recompute(item, newCfg)
	}

	first, err := s.repo.UpdateConfigWithRecompute(ctx, user.ID, newCfg, recompute)
	s.Require().NoError(err)
	s.Assert().Equal(3, first)

	second, err := s.repo.UpdateConfigWithRecompute(ctx, user.ID, newCfg, recompute)
	s.Require().NoError(err)
	s.Assert().Equal(0, second, "a repeated recompute under the same config writes nothing")
}

func (s *UserRepositorySuite) TestUpdateConfigWithRecompute_MissingUser() {
	ctx := context.Background()

	_, err := s.repo.UpdateConfigWithRecompute(ctx, 9999, models.DefaultSchedulerConfig(), func(item models.LearningItem) (models.LearningItem, bool) {
		return item, false
	})
	s.Require().Error(err)
}

func (s *UserRepositorySuite) TestUpdateConfigWithRecompute_CancelRollsBack() {
	reviewed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	user, err := s.repo.Insert(context.Background(), "anna", models.DefaultSchedulerConfig())
	s.Require().NoError(err)
	s.seedItems(user.ID, reviewed)

	before, err := s.items.List(context.Background(), models.ItemFilter{UserID: user.ID})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	newCfg := models.SchedulerConfig{MaxBins: 5, IntervalStartHours: 12, Algorithm: models.AlgorithmFibonacci}
	calls := 0
	_, err = s.repo.UpdateConfigWithRecompute(ctx, user.ID, newCfg, func(item models.LearningItem) (models.LearningItem, bool) {
		calls++
		if calls == 2 {
			cancel() // abort mid-recompute, after the first item was written
		}
		return scheduler.Recompute(item, newCfg)
	})
	s.Require().Error(err)

	// Nothing from the aborted run is visible: config and items are intact.
	got, err := s.repo.Get(context.Background(), user.ID)
	s.Require().NoError(err)
	s.Assert().Equal(models.DefaultMaxBins, got.Config.MaxBins)
	s.Assert().Equal(models.DefaultIntervalStart, got.Config.IntervalStartHours)

	after, err := s.items.List(context.Background(), models.ItemFilter{UserID: user.ID})
	s.Require().NoError(err)
	s.Assert().Equal(before, after)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
