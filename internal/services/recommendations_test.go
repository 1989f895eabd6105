package services

import (
	"testing"
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// noon keeps the evening rule out of tests that are not about it
var noon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func entry(mood string, intensity int, recordedAt time.Time) models.MoodEntry {
	return models.MoodEntry{Mood: mood, Intensity: intensity, RecordedAt: recordedAt}
}

func TestSelectCandidatesLowAverageIntensity(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodSad, 3, noon),
			entry(models.MoodNeutral, 4, noon.AddDate(0, 0, -3)),
		},
		Now: noon,
	}

	out := SelectCandidates(in)

	types := candidateTypes(out)
	assert.Contains(t, types, models.RecommendationBreathing)
	assert.NotContains(t, types, models.RecommendationSleep)
}

func TestSelectCandidatesHighAverageSkipsBreathing(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodHappy, 8, noon),
			entry(models.MoodCalm, 7, noon.AddDate(0, 0, -1)),
		},
		Now: noon,
	}

	out := SelectCandidates(in)

	assert.NotContains(t, candidateTypes(out), models.RecommendationBreathing)
}

func TestSelectCandidatesConsecutiveNegativeDays(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodAnxious, 5, noon.AddDate(0, 0, -1)),
			entry(models.MoodSad, 6, noon.AddDate(0, 0, -2)),
		},
		Now: noon,
	}

	out := SelectCandidates(in)

	assert.Contains(t, candidateTypes(out), models.RecommendationCBT)
}

func TestSelectCandidatesGapBreaksConsecutiveDays(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodAnxious, 5, noon.AddDate(0, 0, -1)),
			entry(models.MoodSad, 6, noon.AddDate(0, 0, -3)),
		},
		Now: noon,
	}

	out := SelectCandidates(in)

	assert.NotContains(t, candidateTypes(out), models.RecommendationCBT)
}

func TestSelectCandidatesNegativeSameDayNotConsecutive(t *testing.T) {
	// two negative entries on one calendar day are a single low day
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodAnxious, 5, noon.Add(-2*time.Hour)),
			entry(models.MoodSad, 6, noon.Add(-5*time.Hour)),
		},
		Now: noon,
	}

	out := SelectCandidates(in)

	assert.NotContains(t, candidateTypes(out), models.RecommendationCBT)
}

func TestSelectCandidatesEveningSuggestsSleep(t *testing.T) {
	evening := time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC)
	in := RuleInput{
		Entries: []models.MoodEntry{entry(models.MoodCalm, 7, evening)},
		Now:     evening,
	}

	out := SelectCandidates(in)

	assert.Contains(t, candidateTypes(out), models.RecommendationSleep)
}

func TestSelectCandidatesNoEntryTodaySuggestsCheckin(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{entry(models.MoodCalm, 7, noon.AddDate(0, 0, -1))},
		Now:     noon,
	}

	out := SelectCandidates(in)

	assert.Contains(t, candidateTypes(out), models.RecommendationCheckin)
}

func TestSelectCandidatesEntryTodaySkipsCheckin(t *testing.T) {
	in := RuleInput{
		Entries: []models.MoodEntry{entry(models.MoodCalm, 7, noon.Add(-time.Hour))},
		Now:     noon,
	}

	out := SelectCandidates(in)

	assert.NotContains(t, candidateTypes(out), models.RecommendationCheckin)
}

func TestSelectCandidatesRespectsActiveCap(t *testing.T) {
	in := RuleInput{
		Entries:     nil,
		Now:         noon,
		ActiveCount: models.MaxActiveRecommendations,
	}

	assert.Empty(t, SelectCandidates(in))
}

func TestSelectCandidatesTruncatesToRemainingSlots(t *testing.T) {
	// evening, no entry today, low two-day streak and low average would
	// produce four candidates; one slot left means one candidate
	evening := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)
	in := RuleInput{
		Entries: []models.MoodEntry{
			entry(models.MoodSad, 2, evening.AddDate(0, 0, -1)),
			entry(models.MoodAnxious, 3, evening.AddDate(0, 0, -2)),
		},
		Now:         evening,
		ActiveCount: models.MaxActiveRecommendations - 1,
	}

	out := SelectCandidates(in)

	assert.Len(t, out, 1)
}

func TestSelectCandidatesEmptyWindow(t *testing.T) {
	in := RuleInput{Entries: nil, Now: noon}

	out := SelectCandidates(in)

	// only the check-in nudge fires with no data
	assert.Equal(t, []string{models.RecommendationCheckin}, candidateTypes(out))
}

func TestLatestMoodDefaultsToNeutral(t *testing.T) {
	assert.Equal(t, models.MoodNeutral, latestMood(nil))
}

func candidateTypes(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Type)
	}
	return out
}
