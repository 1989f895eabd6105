package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func chatServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient("test-key", srv.URL, "test-model")
}

func completionBody(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"content":%q},"finish_reason":"stop"}],"usage":{"total_tokens":10}}`, content)
}

func TestCompleteSuccess(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		fmt.Fprint(w, completionBody("Breathe in slowly."))
	})

	text, err := client.Complete(context.Background(), "system", "user")

	assert.NoError(t, err)
	assert.Equal(t, "Breathe in slowly.", text)
}

func TestCompleteRetriesServerError(t *testing.T) {
	calls := 0
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, completionBody("ok"))
	})

	text, err := client.Complete(context.Background(), "system", "user")

	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, calls)
}

func TestCompleteDoesNotRetryClientError(t *testing.T) {
	calls := 0
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad model","type":"invalid_request_error"}}`)
	})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad model")
	assert.Equal(t, 1, calls)
}

func TestCompleteGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})
	client.maxRetries = 2

	_, err := client.Complete(context.Background(), "system", "user")

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := NewClient("", "", "")

	_, err := client.Complete(context.Background(), "system", "user")

	assert.Error(t, err)
}

func TestInterventionTextFallsBack(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	gen := NewGenerator(client)

	text := gen.InterventionText(context.Background(), "breathing", "anxious")

	assert.Equal(t, interventionFallbacks["breathing"], text)
}

func TestInterventionTextUnknownKindFallsBack(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	gen := NewGenerator(client)

	text := gen.InterventionText(context.Background(), "sound-bath", "calm")

	assert.Equal(t, defaultInterventionFallback, text)
}

func TestModeratePostParsesVerdict(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`{"flagged": true, "reason": "harassment"}`))
	})
	gen := NewGenerator(client)

	flagged, reason := gen.ModeratePost(context.Background(), "some post")

	assert.True(t, flagged)
	assert.Equal(t, "harassment", reason)
}

func TestModeratePostStripsCodeFence(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody("```json\n{\"flagged\": true, \"reason\": \"self-harm\"}\n```"))
	})
	gen := NewGenerator(client)

	flagged, reason := gen.ModeratePost(context.Background(), "some post")

	assert.True(t, flagged)
	assert.Equal(t, "self-harm", reason)
}

func TestModeratePostFailsOpen(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	gen := NewGenerator(client)

	flagged, reason := gen.ModeratePost(context.Background(), "some post")

	assert.False(t, flagged)
	assert.Empty(t, reason)
}

func TestModeratePostFailsOpenOnGarbage(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody("I cannot moderate this."))
	})
	gen := NewGenerator(client)

	flagged, _ := gen.ModeratePost(context.Background(), "some post")

	assert.False(t, flagged)
}

func TestMoodPatternSummaryEmptyWeek(t *testing.T) {
	gen := NewGenerator(NewClient("key", "http://unused", "m"))

	text := gen.MoodPatternSummary(context.Background(), nil, 0)

	assert.Contains(t, text, "No mood entries yet")
}
