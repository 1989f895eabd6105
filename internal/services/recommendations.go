package services

import (
	"context"
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/cache"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"github.com/rahat-dev/mindnest/backend/pkg/logger"
	"github.com/rahat-dev/mindnest/backend/pkg/metrics"
)

// lowIntensityThreshold is the 7-day average below which a breathing
// exercise is suggested
const lowIntensityThreshold = 4.0

// eveningHour is the local hour from which sleep content is suggested
const eveningHour = 20

// moodWindowDays is the lookback window the rules run over
const moodWindowDays = 7

// Candidate is a recommendation the rule pass wants to create. Message text
// is filled in later by the AI layer.
type Candidate struct {
	Type  string
	Title string
	Mood  string // the mood that triggered the rule, for prompt context
}

// RuleInput is everything the pure rule pass needs
type RuleInput struct {
	Entries     []models.MoodEntry // window entries, newest first
	Now         time.Time
	ActiveCount int // current active recommendation rows for the user
}

// SelectCandidates runs the rule checks over recent mood activity and
// returns the recommendations to create, already truncated so the user never
// exceeds MaxActiveRecommendations active rows.
func SelectCandidates(in RuleInput) []Candidate {
	remaining := models.MaxActiveRecommendations - in.ActiveCount
	if remaining <= 0 {
		return nil
	}

	var out []Candidate
	latest := latestMood(in.Entries)

	if avg, n := averageIntensity(in.Entries); n > 0 && avg < lowIntensityThreshold {
		out = append(out, Candidate{
			Type:  models.RecommendationBreathing,
			Title: "Try a breathing exercise",
			Mood:  latest,
		})
	}

	if hasConsecutiveLowDays(in.Entries, in.Now) {
		out = append(out, Candidate{
			Type:  models.RecommendationCBT,
			Title: "A journaling prompt for you",
			Mood:  latest,
		})
	}

	if in.Now.Hour() >= eveningHour {
		out = append(out, Candidate{
			Type:  models.RecommendationSleep,
			Title: "Wind down for tonight",
			Mood:  latest,
		})
	}

	if !hasEntryOn(in.Entries, in.Now) {
		out = append(out, Candidate{
			Type:  models.RecommendationCheckin,
			Title: "How are you feeling today?",
			Mood:  latest,
		})
	}

	if len(out) > remaining {
		out = out[:remaining]
	}
	return out
}

func averageIntensity(entries []models.MoodEntry) (float64, int) {
	total := 0
	for _, e := range entries {
		total += e.Intensity
	}
	if len(entries) == 0 {
		return 0, 0
	}
	return float64(total) / float64(len(entries)), len(entries)
}

func latestMood(entries []models.MoodEntry) string {
	if len(entries) == 0 {
		return models.MoodNeutral
	}
	return entries[0].Mood
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func hasEntryOn(entries []models.MoodEntry, day time.Time) bool {
	for _, e := range entries {
		if sameDay(e.RecordedAt, day) {
			return true
		}
	}
	return false
}

// hasConsecutiveLowDays scans the window day by day looking for two
// consecutive calendar days that each contain at least one negative-mood entry
func hasConsecutiveLowDays(entries []models.MoodEntry, now time.Time) bool {
	prevLow := false
	for d := moodWindowDays - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		low := false
		for _, e := range entries {
			if sameDay(e.RecordedAt, day) && models.NegativeMoods[e.Mood] {
				low = true
				break
			}
		}
		if low && prevLow {
			return true
		}
		prevLow = low
	}
	return false
}

// RecommendationService generates, lists, and dismisses recommendation rows
type RecommendationService struct {
	recRepo     repositories.RecommendationRepository
	moodRepo    repositories.MoodEntryRepository
	contentRepo repositories.ContentRepository
	generator   ai.Generator
	cache       *cache.RecommendationCache
	log         logger.Logger
}

// NewRecommendationService creates a RecommendationService
func NewRecommendationService(
	recRepo repositories.RecommendationRepository,
	moodRepo repositories.MoodEntryRepository,
	contentRepo repositories.ContentRepository,
	generator ai.Generator,
	recCache *cache.RecommendationCache,
	log logger.Logger,
) *RecommendationService {
	return &RecommendationService{
		recRepo:     recRepo,
		moodRepo:    moodRepo,
		contentRepo: contentRepo,
		generator:   generator,
		cache:       recCache,
		log:         log,
	}
}

// GenerateForUser runs the rules for one user and inserts the resulting rows.
// Every row gets the fixed 24-hour expiry; the active count never exceeds
// MaxActiveRecommendations.
func (s *RecommendationService) GenerateForUser(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	now := time.Now()

	entries, err := s.moodRepo.GetMoodEntriesByUserID(userID, now.AddDate(0, 0, -moodWindowDays))
	if err != nil {
		return nil, err
	}
	active, err := s.recRepo.CountActiveByUserID(userID, now)
	if err != nil {
		return nil, err
	}

	candidates := SelectCandidates(RuleInput{
		Entries:     entries,
		Now:         now,
		ActiveCount: int(active),
	})

	var created []models.Recommendation
	for _, c := range candidates {
		rec := models.Recommendation{
			UserID:    userID,
			Type:      c.Type,
			Title:     c.Title,
			Message:   s.messageFor(ctx, c),
			ExpiresAt: now.Add(models.RecommendationTTL),
		}
		if c.Type == models.RecommendationSleep {
			if id := s.sleepContentID(c.Mood); id != nil {
				rec.ContentID = id
			}
		}
		if err := s.recRepo.CreateRecommendation(&rec); err != nil {
			return created, err
		}
		metrics.ObserveRecommendation(c.Type)
		created = append(created, rec)
	}

	if len(created) > 0 {
		s.cache.Invalidate(ctx, userID)
		s.log.Infof("generated %d recommendations for user %d", len(created), userID)
	}
	return created, nil
}

func (s *RecommendationService) messageFor(ctx context.Context, c Candidate) string {
	switch c.Type {
	case models.RecommendationBreathing:
		return s.generator.InterventionText(ctx, models.InterventionBreathing, c.Mood)
	case models.RecommendationCBT:
		return s.generator.CBTPrompt(ctx, c.Mood, "")
	case models.RecommendationSleep:
		return "It's getting late. Some calming content can help you wind down before bed."
	case models.RecommendationCheckin:
		return "You haven't logged a mood today. A quick check-in takes less than a minute."
	default:
		return c.Title
	}
}

func (s *RecommendationService) sleepContentID(mood string) *uint {
	contents, err := s.contentRepo.GetContents("", mood)
	if err != nil || len(contents) == 0 {
		return nil
	}
	id := contents[0].ID
	return &id
}

// ListActive returns the user's active rows, via the cache when possible
func (s *RecommendationService) ListActive(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	if recs, ok := s.cache.Get(ctx, userID); ok {
		return recs, nil
	}
	recs, err := s.recRepo.GetActiveByUserID(userID, time.Now())
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, userID, recs)
	return recs, nil
}

// Dismiss marks one of the user's rows dismissed. Returns the row so handlers
// can enforce ownership before calling.
func (s *RecommendationService) Dismiss(ctx context.Context, userID, recID uint) error {
	if err := s.recRepo.MarkDismissed(recID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}

// PurgeExpired removes rows past their expiry; used by the hourly cron job
func (s *RecommendationService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.recRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.ObservePurged(n)
		s.log.Infof("purged %d expired recommendations", n)
	}
	return n, nil
}

// GenerateForRecentlyActive tops up recommendations for users with mood
// activity in the window; used by the nightly cron job
func (s *RecommendationService) GenerateForRecentlyActive(ctx context.Context) error {
	ids, err := s.moodRepo.GetRecentlyActiveUserIDs(time.Now().AddDate(0, 0, -moodWindowDays))
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.GenerateForUser(ctx, id); err != nil {
			s.log.Errorf("nightly generation failed for user %d: %v", id, err)
		}
	}
	return nil
}
