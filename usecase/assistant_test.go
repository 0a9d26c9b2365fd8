package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/config"
	"taskmaster/model"
)

func assistantServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: reply}}}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAssistant(baseURL string) *AssistantService {
	return NewAssistantService(config.AssistantConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestParseTasksSingleDraft(t *testing.T) {
	reply := `[{"title":"Finish report","description":"quarterly numbers","priority":"high","category":"Work","dueDate":"2024-01-12","startTime":"14:00","endTime":"15:00","confidence":0.9}]`
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "finish the report by friday afternoon", ParseOptions{Today: "2024-01-10"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, "Finish report", d.Title)
	assert.Equal(t, model.PriorityHigh, d.Priority)
	assert.Equal(t, "2024-01-12", d.DueDate)
	assert.Equal(t, "14:00", d.StartTime)
	assert.InDelta(t, 0.9, d.Confidence, 0.001)
	assert.False(t, d.NeedsReview)
}

func TestParseTasksCodeFencedReply(t *testing.T) {
	reply := "```json\n[{\"title\":\"Buy milk\",\"priority\":\"low\",\"confidence\":0.8}]\n```"
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "buy milk", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Buy milk", drafts[0].Title)
	assert.Equal(t, model.PriorityLow, drafts[0].Priority)
}

func TestParseTasksLowConfidenceFlagged(t *testing.T) {
	reply := `[{"title":"Something vague","priority":"medium","confidence":0.3}]`
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "maybe do a thing?", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.True(t, drafts[0].NeedsReview)
}

func TestParseTasksDefaultsApplied(t *testing.T) {
	// No priority and no confidence in the reply.
	reply := `[{"title":"Untyped task"}]`
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "do the thing", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, model.PriorityMedium, drafts[0].Priority)
	assert.InDelta(t, 0.7, drafts[0].Confidence, 0.001)
	assert.False(t, drafts[0].NeedsReview)
}

func TestParseTasksSkipsUntitled(t *testing.T) {
	reply := `[{"title":"  "},{"title":"Real one","priority":"medium"}]`
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "hello", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Real one", drafts[0].Title)
}

func TestParseTasksEmptyArray(t *testing.T) {
	srv := assistantServer(t, "[]")
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "good morning", ParseOptions{})
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestParseTasksGarbageReply(t *testing.T) {
	srv := assistantServer(t, "I cannot help with that.")
	defer srv.Close()

	_, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "hm", ParseOptions{})
	assert.Error(t, err)
}

func TestParseTasksUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "hm", ParseOptions{})
	assert.Error(t, err)
}

func TestParseTasksDisabledWithoutKey(t *testing.T) {
	svc := NewAssistantService(config.AssistantConfig{Timeout: time.Second})
	assert.False(t, svc.Enabled())

	_, err := svc.ParseTasks(context.Background(), "anything", ParseOptions{})
	assert.ErrorIs(t, err, ErrAssistantDisabled)
}

func TestParseTasksConfidenceClamped(t *testing.T) {
	reply := `[{"title":"Over","confidence":3.0},{"title":"Under","confidence":-1.0}]`
	srv := assistantServer(t, reply)
	defer srv.Close()

	drafts, err := newTestAssistant(srv.URL).ParseTasks(context.Background(), "x", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, 1.0, drafts[0].Confidence)
	assert.Equal(t, 0.0, drafts[1].Confidence)
	assert.True(t, drafts[1].NeedsReview)
}

func TestBuildPromptIncludesContext(t *testing.T) {
	prompt := buildPrompt("and friday too", ParseOptions{
		Today:      "2024-01-10",
		Timezone:   "Asia/Seoul",
		Categories: []string{"Work", "Study"},
		History: []ChatTurn{
			{Role: "user", Content: "gym on wednesday"},
			{Role: "assistant", Content: "Added gym for Wednesday."},
		},
	})
	assert.Contains(t, prompt, "2024-01-10")
	assert.Contains(t, prompt, "Asia/Seoul")
	assert.Contains(t, prompt, "Work, Study")
	assert.Contains(t, prompt, "gym on wednesday")
	assert.Contains(t, prompt, "and friday too")
}
