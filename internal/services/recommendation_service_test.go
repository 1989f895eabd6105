package services

import (
	"context"
	"testing"
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/cache"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRecRepo struct {
	rows       []models.Recommendation
	nextID     uint
	dismissals []uint
}

func (r *fakeRecRepo) CreateRecommendation(rec *models.Recommendation) error {
	r.nextID++
	rec.ID = r.nextID
	r.rows = append(r.rows, *rec)
	return nil
}

func (r *fakeRecRepo) GetActiveByUserID(userID uint, now time.Time) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, rec := range r.rows {
		if rec.UserID == userID && rec.Active(now) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecRepo) CountActiveByUserID(userID uint, now time.Time) (int64, error) {
	recs, _ := r.GetActiveByUserID(userID, now)
	return int64(len(recs)), nil
}

func (r *fakeRecRepo) GetRecommendationByID(id uint) (*models.Recommendation, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecRepo) MarkDismissed(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Dismissed = true
			r.dismissals = append(r.dismissals, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRecRepo) DeleteExpired(now time.Time) (int64, error) {
	kept := r.rows[:0]
	removed := int64(0)
	for _, rec := range r.rows {
		if rec.ExpiresAt.After(now) {
			kept = append(kept, rec)
		} else {
			removed++
		}
	}
	r.rows = kept
	return removed, nil
}

type fakeMoodRepo struct {
	entries []models.MoodEntry
	active  []uint
}

func (r *fakeMoodRepo) CreateMoodEntry(e *models.MoodEntry) error            { return nil }
func (r *fakeMoodRepo) GetMoodEntryByID(id uint) (*models.MoodEntry, error)  { return nil, gorm.ErrRecordNotFound }
func (r *fakeMoodRepo) UpdateMoodEntry(e *models.MoodEntry) error            { return nil }
func (r *fakeMoodRepo) DeleteMoodEntry(id uint) error                        { return nil }
func (r *fakeMoodRepo) GetRecentlyActiveUserIDs(since time.Time) ([]uint, error) {
	return r.active, nil
}
func (r *fakeMoodRepo) GetMoodEntriesByUserID(userID uint, since time.Time) ([]models.MoodEntry, error) {
	return r.entries, nil
}

type fakeContentRepo struct {
	contents []models.ContentMetadata
}

func (r *fakeContentRepo) CreateContent(c *models.ContentMetadata) error          { return nil }
func (r *fakeContentRepo) GetContentByID(id uint) (*models.ContentMetadata, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) GetContents(kind, mood string) ([]models.ContentMetadata, error) {
	return r.contents, nil
}
func (r *fakeContentRepo) UpdateContent(c *models.ContentMetadata) error { return nil }
func (r *fakeContentRepo) DeleteContent(id uint) error                   { return nil }

type staticGenerator struct{}

func (staticGenerator) InterventionText(ctx context.Context, kind, mood string) string {
	return "intervention text"
}
func (staticGenerator) CBTPrompt(ctx context.Context, mood, trigger string) string {
	return "cbt prompt"
}
func (staticGenerator) MoodPatternSummary(ctx context.Context, moods []string, avg float64) string {
	return "summary"
}
func (staticGenerator) ModeratePost(ctx context.Context, content string) (bool, string) {
	return false, ""
}

func newService(recRepo *fakeRecRepo, moodRepo *fakeMoodRepo, contentRepo *fakeContentRepo) *RecommendationService {
	return NewRecommendationService(
		recRepo, moodRepo, contentRepo,
		staticGenerator{},
		cache.NewRecommendationCache(nil),
		logger.NewZapLogger(zap.NewNop().Sugar()),
	)
}

func TestGenerateForUserCreatesRowsWithExpiry(t *testing.T) {
	now := time.Now()
	recRepo := &fakeRecRepo{}
	moodRepo := &fakeMoodRepo{entries: []models.MoodEntry{
		{Mood: models.MoodSad, Intensity: 2, RecordedAt: now.AddDate(0, 0, -1)},
	}}
	svc := newService(recRepo, moodRepo, &fakeContentRepo{})

	created, err := svc.GenerateForUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotEmpty(t, created)
	for _, rec := range created {
		assert.Equal(t, uint(7), rec.UserID)
		assert.WithinDuration(t, now.Add(models.RecommendationTTL), rec.ExpiresAt, 5*time.Second)
		assert.NotEmpty(t, rec.Message)
	}
}

func TestGenerateForUserStopsAtActiveCap(t *testing.T) {
	now := time.Now()
	recRepo := &fakeRecRepo{}
	for i := 0; i < models.MaxActiveRecommendations; i++ {
		recRepo.CreateRecommendation(&models.Recommendation{
			UserID:    7,
			Type:      models.RecommendationCheckin,
			ExpiresAt: now.Add(time.Hour),
		})
	}
	moodRepo := &fakeMoodRepo{entries: []models.MoodEntry{
		{Mood: models.MoodSad, Intensity: 2, RecordedAt: now},
	}}
	svc := newService(recRepo, moodRepo, &fakeContentRepo{})

	created, err := svc.GenerateForUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, created)
	assert.Len(t, recRepo.rows, models.MaxActiveRecommendations)
}

func TestGenerateForUserDismissedRowsFreeSlots(t *testing.T) {
	now := time.Now()
	recRepo := &fakeRecRepo{}
	for i := 0; i < models.MaxActiveRecommendations; i++ {
		recRepo.CreateRecommendation(&models.Recommendation{
			UserID:    7,
			Dismissed: true,
			ExpiresAt: now.Add(time.Hour),
		})
	}
	svc := newService(recRepo, &fakeMoodRepo{}, &fakeContentRepo{})

	created, err := svc.GenerateForUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotEmpty(t, created) // the check-in nudge fits now
}

func TestDismissMarksRow(t *testing.T) {
	recRepo := &fakeRecRepo{}
	recRepo.CreateRecommendation(&models.Recommendation{
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	svc := newService(recRepo, &fakeMoodRepo{}, &fakeContentRepo{})

	err := svc.Dismiss(context.Background(), 7, 1)

	assert.NoError(t, err)
	assert.True(t, recRepo.rows[0].Dismissed)
}

func TestPurgeExpired(t *testing.T) {
	now := time.Now()
	recRepo := &fakeRecRepo{}
	recRepo.CreateRecommendation(&models.Recommendation{UserID: 7, ExpiresAt: now.Add(-time.Hour)})
	recRepo.CreateRecommendation(&models.Recommendation{UserID: 7, ExpiresAt: now.Add(time.Hour)})
	svc := newService(recRepo, &fakeMoodRepo{}, &fakeContentRepo{})

	n, err := svc.PurgeExpired(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, recRepo.rows, 1)
}

func TestGenerateForRecentlyActive(t *testing.T) {
	recRepo := &fakeRecRepo{}
	moodRepo := &fakeMoodRepo{active: []uint{3, 9}}
	svc := newService(recRepo, moodRepo, &fakeContentRepo{})

	err := svc.GenerateForRecentlyActive(context.Background())

	assert.NoError(t, err)
	users := map[uint]bool{}
	for _, rec := range recRepo.rows {
		users[rec.UserID] = true
	}
	assert.True(t, users[3])
	assert.True(t, users[9])
}
