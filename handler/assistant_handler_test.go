package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/config"
	"taskmaster/usecase"
)

func TestAssistantParseEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[{\"title\":\"Submit assignment\",\"priority\":\"high\",\"dueDate\":\"2024-01-12\",\"confidence\":0.9}]"}]}}]}`))
	}))
	defer upstream.Close()

	svc := usecase.NewAssistantService(config.AssistantConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: upstream.URL,
		Timeout: 5 * time.Second,
	})

	h := NewAssistantHandler(svc)
	router := testRouter(http.MethodPost, "/api/assistant/parse", h.ParseTasks)

	w := postJSON(t, router, "/api/assistant/parse", map[string]any{
		"message": "submit the assignment by friday, it's important",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Drafts []usecase.DraftTask `json:"drafts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Drafts, 1)
	assert.Equal(t, "Submit assignment", body.Data.Drafts[0].Title)
	assert.Equal(t, "2024-01-12", body.Data.Drafts[0].DueDate)
	assert.False(t, body.Data.Drafts[0].NeedsReview)
}

func TestAssistantParseUnconfigured(t *testing.T) {
	svc := usecase.NewAssistantService(config.AssistantConfig{Timeout: time.Second})
	h := NewAssistantHandler(svc)
	router := testRouter(http.MethodPost, "/api/assistant/parse", h.ParseTasks)

	w := postJSON(t, router, "/api/assistant/parse", map[string]any{"message": "hello"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
