package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rahat-dev/mindnest/backend/pkg/metrics"
)

// Generator produces wellness text content. Every method degrades to a static
// fallback when the underlying completion call fails, so callers never surface
// AI outages to the user.
type Generator interface {
	InterventionText(ctx context.Context, kind, mood string) string
	CBTPrompt(ctx context.Context, mood, trigger string) string
	MoodPatternSummary(ctx context.Context, moods []string, avgIntensity float64) string
	ModeratePost(ctx context.Context, content string) (flagged bool, reason string)
}

// ClientGenerator implements Generator over the chat-completions Client
type ClientGenerator struct {
	client *Client
}

// NewGenerator creates a ClientGenerator
func NewGenerator(client *Client) *ClientGenerator {
	return &ClientGenerator{client: client}
}

const systemPrompt = "You are a supportive mental-wellness assistant. " +
	"Be warm and concise. Never give medical advice or diagnoses."

var interventionFallbacks = map[string]string{
	"breathing":  "Find a comfortable position. Breathe in slowly for four counts, hold for four, and breathe out for six. Repeat for a few minutes.",
	"meditation": "Close your eyes and bring your attention to your breath. When your mind wanders, gently return to the breath without judgment.",
	"grounding":  "Name five things you can see, four you can touch, three you can hear, two you can smell, and one you can taste.",
	"cbt":        "Write down the thought that is troubling you. What evidence supports it? What evidence does not? What would you tell a friend thinking this?",
}

const defaultInterventionFallback = "Take a few minutes for yourself. Slow your breathing and notice how your body feels right now."

// InterventionText produces guidance text for a guided exercise
func (g *ClientGenerator) InterventionText(ctx context.Context, kind, mood string) string {
	user := fmt.Sprintf("Write a short guided %s exercise (3-5 sentences) for someone feeling %s.", kind, mood)
	text, err := g.client.Complete(ctx, systemPrompt, user)
	if err != nil || strings.TrimSpace(text) == "" {
		metrics.ObserveAICall("intervention", "fallback")
		if fb, ok := interventionFallbacks[kind]; ok {
			return fb
		}
		return defaultInterventionFallback
	}
	metrics.ObserveAICall("intervention", "ok")
	return strings.TrimSpace(text)
}

const cbtPromptFallback = "What is one thought that has been weighing on you today? Write it down, then ask yourself: is this thought a fact, or an interpretation?"

// CBTPrompt produces a journaling prompt in the CBT style
func (g *ClientGenerator) CBTPrompt(ctx context.Context, mood, trigger string) string {
	user := fmt.Sprintf("Write one CBT-style journaling prompt (a single question) for someone feeling %s", mood)
	if trigger != "" {
		user += fmt.Sprintf(" triggered by %q", trigger)
	}
	user += "."
	text, err := g.client.Complete(ctx, systemPrompt, user)
	if err != nil || strings.TrimSpace(text) == "" {
		metrics.ObserveAICall("cbt_prompt", "fallback")
		return cbtPromptFallback
	}
	metrics.ObserveAICall("cbt_prompt", "ok")
	return strings.TrimSpace(text)
}

const summaryFallback = "You've been logging your moods consistently. Keep checking in with yourself — noticing patterns is the first step to understanding them."

// MoodPatternSummary produces a short narrative over recent mood labels
func (g *ClientGenerator) MoodPatternSummary(ctx context.Context, moods []string, avgIntensity float64) string {
	if len(moods) == 0 {
		return "No mood entries yet this week. Log how you're feeling to start seeing patterns."
	}
	user := fmt.Sprintf(
		"In 2-3 sentences, summarise this week's mood pattern for the user. Moods oldest to newest: %s. Average intensity: %.1f out of 10.",
		strings.Join(moods, ", "), avgIntensity)
	text, err := g.client.Complete(ctx, systemPrompt, user)
	if err != nil || strings.TrimSpace(text) == "" {
		metrics.ObserveAICall("summary", "fallback")
		return summaryFallback
	}
	metrics.ObserveAICall("summary", "ok")
	return strings.TrimSpace(text)
}

const moderationSystem = "You are a content moderator for a mental-health support community. " +
	"Respond with JSON only: {\"flagged\": bool, \"reason\": string}. " +
	"Flag content that is harassing, encourages self-harm, or shares personal contact details."

type moderationVerdict struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason"`
}

// ModeratePost asks the model for a moderation verdict. Fails open: on any
// error the post is allowed, matching the fallback posture of the rest of
// the AI surface.
func (g *ClientGenerator) ModeratePost(ctx context.Context, content string) (bool, string) {
	text, err := g.client.Complete(ctx, moderationSystem, content)
	if err != nil {
		metrics.ObserveAICall("moderation", "fallback")
		return false, ""
	}
	metrics.ObserveAICall("moderation", "ok")
	// models sometimes wrap JSON in a code fence
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var verdict moderationVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &verdict); err != nil {
		return false, ""
	}
	return verdict.Flagged, verdict.Reason
}
