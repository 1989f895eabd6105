package services

import (
	"testing"
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateMoodStats(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{ // newest first, as the repository returns
		entry(models.MoodHappy, 8, now),
		entry(models.MoodSad, 3, now.AddDate(0, 0, -1)),
		entry(models.MoodSad, 4, now.AddDate(0, 0, -2)),
	}

	stats := CalculateMoodStats(entries, 7)

	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 3, stats.EntryCount)
	assert.InDelta(t, 5.0, stats.AverageIntensity, 0.001)
	assert.Equal(t, 2, stats.MoodCounts[models.MoodSad])
	assert.Equal(t, 1, stats.MoodCounts[models.MoodHappy])
	assert.Equal(t, []int{4, 3, 8}, stats.Trend) // oldest to newest
}

func TestCalculateMoodStatsEmpty(t *testing.T) {
	stats := CalculateMoodStats(nil, 30)

	assert.Equal(t, 0, stats.EntryCount)
	assert.Zero(t, stats.AverageIntensity)
	assert.Empty(t, stats.Trend)
}

func TestCalculateSleepStats(t *testing.T) {
	night := func(daysAgo int, hours float64, quality int) models.SleepEntry {
		end := time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
		return models.SleepEntry{
			StartTime: end.Add(-time.Duration(hours * float64(time.Hour))),
			EndTime:   end,
			Quality:   quality,
		}
	}
	entries := []models.SleepEntry{ // newest first
		night(0, 8, 9),
		night(1, 6, 5),
	}

	stats := CalculateSleepStats(entries)

	assert.Equal(t, 2, stats.EntryCount)
	assert.InDelta(t, 7.0, stats.AverageQuality, 0.001)
	assert.InDelta(t, 7.0, stats.AverageDuration, 0.001)
	assert.Equal(t, []int{5, 9}, stats.QualityTrend)
}

func TestCalculateSleepStatsEmpty(t *testing.T) {
	stats := CalculateSleepStats(nil)

	assert.Equal(t, 0, stats.EntryCount)
	assert.Zero(t, stats.AverageQuality)
	assert.Zero(t, stats.AverageDuration)
}
