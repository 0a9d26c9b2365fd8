package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskmaster/config"
	"taskmaster/model"
	"taskmaster/schedule"
)

// LowConfidenceThreshold marks drafts the UI should ask the user to confirm.
const LowConfidenceThreshold = 0.5

const defaultConfidence = 0.7

var ErrAssistantDisabled = fmt.Errorf("assistant: no API key configured")

// ChatTurn is one prior exchange, passed back for follow-up parsing.
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ParseOptions struct {
	Today      string
	Timezone   string
	Categories []string
	History    []ChatTurn
}

// DraftTask is a parsed task proposal. It is never persisted directly; the
// client submits it through the normal create endpoint.
type DraftTask struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category,omitempty"`
	DueDate     string         `json:"dueDate,omitempty"`
	StartTime   string         `json:"startTime,omitempty"`
	EndTime     string         `json:"endTime,omitempty"`
	Confidence  float64        `json:"confidence"`
	NeedsReview bool           `json:"needsReview"`
}

type AssistantService struct {
	cfg    config.AssistantConfig
	client *http.Client
}

func NewAssistantService(cfg config.AssistantConfig) *AssistantService {
	return &AssistantService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (svc *AssistantService) Enabled() bool {
	return svc.cfg.APIKey != ""
}

// ParseTasks turns a free-form message into zero or more task drafts.
func (svc *AssistantService) ParseTasks(ctx context.Context, message string, opts ParseOptions) ([]DraftTask, error) {
	if !svc.Enabled() {
		return nil, ErrAssistantDisabled
	}

	if opts.Today == "" {
		opts.Today = time.Now().Format(schedule.DateLayout)
	}
	if opts.Timezone == "" {
		opts.Timezone = time.Now().Location().String()
	}
	if len(opts.Categories) == 0 {
		opts.Categories = []string{"Work", "Personal", "Study", "Others"}
	}

	raw, err := svc.generate(ctx, buildPrompt(message, opts))
	if err != nil {
		return nil, err
	}

	drafts, err := decodeDrafts(raw)
	if err != nil {
		return nil, fmt.Errorf("assistant: bad model output: %w", err)
	}
	return drafts, nil
}

func buildPrompt(message string, opts ParseOptions) string {
	var b strings.Builder
	b.WriteString("You convert natural language into task entries for a planner app.\n")
	fmt.Fprintf(&b, "Today's date is %s (%s).\n", opts.Today, opts.Timezone)
	fmt.Fprintf(&b, "Available categories: %s.\n\n", strings.Join(opts.Categories, ", "))
	b.WriteString("Respond with ONLY a JSON array. Each element:\n")
	b.WriteString(`{"title": string, "description": string, "priority": "low"|"medium"|"high", "category": string, "dueDate": "YYYY-MM-DD" or "", "startTime": "HH:mm" or "", "endTime": "HH:mm" or "", "confidence": number between 0 and 1}`)
	b.WriteString("\n\nResolve relative dates (tomorrow, next Friday) against today's date. ")
	b.WriteString("Pick the closest available category. ")
	b.WriteString("If the message contains no actionable task, respond with [].\n")

	if len(opts.History) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, turn := range opts.History {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
	}

	b.WriteString("\nMessage: ")
	b.WriteString(message)
	return b.String()
}

// Request/response shapes for the Gemini generateContent REST API. Only the
// fields we touch are declared.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (svc *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(svc.cfg.BaseURL, "/"), svc.cfg.Model, svc.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant: upstream returned %d: %s", resp.StatusCode, snippet)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("assistant: decoding response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant: empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func decodeDrafts(raw string) ([]DraftTask, error) {
	raw = stripCodeFence(raw)

	var items []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Priority    string   `json:"priority"`
		Category    string   `json:"category"`
		DueDate     string   `json:"dueDate"`
		StartTime   string   `json:"startTime"`
		EndTime     string   `json:"endTime"`
		Confidence  *float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	drafts := make([]DraftTask, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}

		confidence := defaultConfidence
		if it.Confidence != nil {
			confidence = clamp01(*it.Confidence)
		}

		drafts = append(drafts, DraftTask{
			Title:       title,
			Description: strings.TrimSpace(it.Description),
			Priority:    mapPriority(it.Priority),
			Category:    strings.TrimSpace(it.Category),
			DueDate:     it.DueDate,
			StartTime:   it.StartTime,
			EndTime:     it.EndTime,
			Confidence:  confidence,
			NeedsReview: confidence < LowConfidenceThreshold,
		})
	}
	return drafts, nil
}

// stripCodeFence removes a ```json ... ``` wrapper if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func mapPriority(p string) model.Priority {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "high":
		return model.PriorityHigh
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
