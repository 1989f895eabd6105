package services

import (
	"context"
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
)

// CalculateMoodStats summarises entries over the given window. Entries are
// expected newest first, as the repository returns them.
func CalculateMoodStats(entries []models.MoodEntry, days int) models.MoodStats {
	stats := models.MoodStats{
		Days:       days,
		EntryCount: len(entries),
		MoodCounts: make(map[string]int),
	}

	total := 0
	for _, e := range entries {
		total += e.Intensity
		stats.MoodCounts[e.Mood]++
	}
	if len(entries) > 0 {
		stats.AverageIntensity = float64(total) / float64(len(entries))
	}

	// trend oldest to newest
	stats.Trend = make([]int, len(entries))
	for i, e := range entries {
		stats.Trend[len(entries)-1-i] = e.Intensity
	}
	return stats
}

// CalculateSleepStats summarises sleep entries over the last week
func CalculateSleepStats(entries []models.SleepEntry) models.SleepStats {
	stats := models.SleepStats{EntryCount: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	totalQuality := 0
	totalHours := 0.0
	stats.QualityTrend = make([]int, len(entries))
	for i, e := range entries {
		totalQuality += e.Quality
		totalHours += e.DurationHours()
		stats.QualityTrend[len(entries)-1-i] = e.Quality
	}
	stats.AverageQuality = float64(totalQuality) / float64(len(entries))
	stats.AverageDuration = totalHours / float64(len(entries))
	return stats
}

// InsightsService produces mood statistics and AI-written pattern summaries
type InsightsService struct {
	moodRepo  repositories.MoodEntryRepository
	generator ai.Generator
}

// NewInsightsService creates an InsightsService
func NewInsightsService(moodRepo repositories.MoodEntryRepository, generator ai.Generator) *InsightsService {
	return &InsightsService{moodRepo: moodRepo, generator: generator}
}

// MoodStats computes stats over the last `days` days of entries
func (s *InsightsService) MoodStats(userID uint, days int) (models.MoodStats, error) {
	entries, err := s.moodRepo.GetMoodEntriesByUserID(userID, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return models.MoodStats{}, err
	}
	return CalculateMoodStats(entries, days), nil
}

// PatternSummary produces a short narrative over the last week of moods,
// falling back to canned text when the AI call fails
func (s *InsightsService) PatternSummary(ctx context.Context, userID uint) (string, error) {
	entries, err := s.moodRepo.GetMoodEntriesByUserID(userID, time.Now().AddDate(0, 0, -moodWindowDays))
	if err != nil {
		return "", err
	}

	// oldest to newest for the prompt
	moods := make([]string, len(entries))
	for i, e := range entries {
		moods[len(entries)-1-i] = e.Mood
	}
	avg, _ := averageIntensity(entries)
	return s.generator.MoodPatternSummary(ctx, moods, avg), nil
}
