// Package intent extracts a structured scheduling request from natural
// language using a chat-completion model.
package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/llm"
)

const systemPrompt = `You are a helpful assistant that extracts scheduling information from a user's natural language request.
Return ONLY a JSON object that matches the schema exactly (no extra commentary).
Fields:
 - attendees: list of person names or emails (strings). If none found, return [].
 - topic: short phrase for meeting subject, or null.
 - time_frame: free-text description of the requested time window (e.g., "next week", "tomorrow afternoon"), or null.
 - duration_minutes: integer minutes (default to 60 if unspecified).
 - preferred_times: "mornings", "afternoons", "evenings", or "none".
 - location: string or null (e.g., "Zoom", "Room 401", or null).
If you cannot determine a value, use null (or [] for attendees).
Be conservative: prefer null over hallucinated emails or times.`

type rawRequest struct {
	Attendees       []string `json:"attendees"`
	Topic           string   `json:"topic"`
	TimeFrame       string   `json:"time_frame"`
	DurationMinutes int      `json:"duration_minutes"`
	PreferredTimes  string   `json:"preferred_times"`
	Location        string   `json:"location"`
}

// Parser turns free text into a MeetingRequest.
type Parser struct {
	llm llm.Client
}

func NewParser(client llm.Client) *Parser {
	return &Parser{llm: client}
}

// Parse sends the request text to the model and normalizes the result:
// missing duration defaults to 60 minutes, missing preferred_times to
// "none", attendee strings are trimmed and empties dropped.
func (p *Parser) Parse(ctx context.Context, text string) (*internal.MeetingRequest, error) {
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	}

	var raw rawRequest
	if err := p.llm.ChatJSON(ctx, messages, &raw); err != nil {
		return nil, fmt.Errorf("intent: %w", err)
	}

	req := &internal.MeetingRequest{
		Topic:           strings.TrimSpace(raw.Topic),
		TimeFrame:       strings.TrimSpace(raw.TimeFrame),
		DurationMinutes: raw.DurationMinutes,
		PreferredTimes:  strings.TrimSpace(raw.PreferredTimes),
		Location:        strings.TrimSpace(raw.Location),
		Raw:             text,
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = internal.DefaultDurationMinutes
	}
	if req.PreferredTimes == "" {
		req.PreferredTimes = "none"
	}
	for _, a := range raw.Attendees {
		if a = strings.TrimSpace(a); a != "" {
			req.Attendees = append(req.Attendees, a)
		}
	}
	return req, nil
}
