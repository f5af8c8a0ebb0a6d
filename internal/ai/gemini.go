package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements NoteSuggester using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestStatusNote asks the model for a one-sentence dispatch note.
func (p *GeminiProvider) SuggestStatusNote(ctx context.Context, input NoteInput) (string, error) {
	prompt := buildNotePrompt(input)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Strip potential markdown fencing before parsing.
	cleanJSON := cleanJSONString(responseText.String())

	var result noteResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	note := strings.TrimSpace(result.Note)
	if note == "" {
		return "", fmt.Errorf("empty note from Gemini")
	}
	return note, nil
}

func buildNotePrompt(input NoteInput) string {
	var b strings.Builder
	b.WriteString("You are a dispatch operator for a parcel delivery service. ")
	b.WriteString("Write one short, factual status note (max 20 words) for the booking's audit trail. ")
	b.WriteString(`Respond as JSON: {"note": "..."}` + "\n\n")
	fmt.Fprintf(&b, "Tracking ID: %s\n", input.TrackingID)
	fmt.Fprintf(&b, "Current status: %s\n", input.CurrentStatus)
	fmt.Fprintf(&b, "Target status: %s\n", input.TargetStatus)
	if input.RiderName != "" {
		fmt.Fprintf(&b, "Assigned rider: %s\n", input.RiderName)
	}
	if len(input.RecentHistory) > 0 {
		b.WriteString("Recent history:\n")
		for _, h := range input.RecentHistory {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	return b.String()
}

func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
