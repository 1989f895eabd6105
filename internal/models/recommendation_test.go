package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationActive(t *testing.T) {
	now := time.Now()

	rec := Recommendation{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, rec.Active(now))

	rec.Dismissed = true
	assert.False(t, rec.Active(now))

	expired := Recommendation{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.Active(now))
}

func TestContentTargetsMood(t *testing.T) {
	c := ContentMetadata{TargetMoods: "anxious, sad"}

	assert.True(t, c.TargetsMood(MoodAnxious))
	assert.True(t, c.TargetsMood(MoodSad))
	assert.False(t, c.TargetsMood(MoodHappy))

	empty := ContentMetadata{}
	assert.False(t, empty.TargetsMood(MoodSad))
}

func TestSleepDurationHours(t *testing.T) {
	start := time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC)
	entry := SleepEntry{StartTime: start, EndTime: start.Add(7*time.Hour + 30*time.Minute)}

	assert.InDelta(t, 7.5, entry.DurationHours(), 0.001)
}
