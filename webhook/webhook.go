// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripvote/models"
)

const embedColor = 0x1e3c72

// Client posts messages to a Discord-compatible webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether a webhook URL is set.
func (c *Client) Configured() bool {
	return c.url != ""
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Timestamp string       `json:"timestamp"`
	Footer    embedFooter  `json:"footer"`
}

type payload struct {
	Embeds []embed `json:"embeds"`
}

// SendQuestionnaire forwards a trip questionnaire as a single embed message.
// Empty answers are forwarded as an explicit "not provided" marker so the
// embed always carries every field.
func (c *Client) SendQuestionnaire(ctx context.Context, q models.QuestionnaireRequest) error {
	msg := payload{
		Embeds: []embed{{
			Title: "📋 Nouveau questionnaire voyage",
			Color: embedColor,
			Fields: []embedField{
				{Name: "👤 Nom", Value: orUnset(q.Name)},
				{Name: "✈️ Type de voyage attendu", Value: orUnset(q.TripType)},
				{Name: "🎯 Activités souhaitées", Value: orUnset(q.Activities)},
				{Name: "💡 Activités hors du commun proposées", Value: orUnset(q.UnusualActivities)},
				{Name: "💰 Budget (hors billets et hostel)", Value: orUnset(q.Budget)},
				{Name: "👥 Préférence groupe/séparé", Value: orUnset(q.GroupPreference)},
				{Name: "⚽ Match de foot", Value: orUnset(q.MatchInterest)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Footer:    embedFooter{Text: "tripvote"},
		}},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func orUnset(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Non renseigné"
	}
	return s
}
