package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ChatTurn is one prior message of the conversation, oldest first.
type ChatTurn struct {
	IsUser  bool   `json:"isUser"`
	Content string `json:"content"`
}

// ErrGeminiUnconfigured means no API key was provided; callers answer from
// the local responder instead.
var ErrGeminiUnconfigured = errors.New("gemini api key not configured")

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// maxHistoryTurns caps how much prior conversation is forwarded upstream.
const maxHistoryTurns = 6

const fitnessCoachPrompt = `You are FitBot, a friendly and knowledgeable AI fitness coach.
Your expertise includes:
- Workout programming and exercise techniques
- Nutrition and diet advice
- Recovery and injury prevention
- Muscle building and weight loss strategies
- Motivation and goal setting

Guidelines:
- Keep responses concise but informative (under 300 words)
- Use emojis sparingly to be friendly
- Format with bullet points and sections when helpful
- Always prioritize safety - recommend consulting professionals for injuries or medical concerns
- Be encouraging and supportive
- If asked about non-fitness topics, politely redirect to fitness-related advice

User message: `

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls Google's generative-language REST API. Endpoint is
// overridable for tests.
type GeminiClient struct {
	apiKey     string
	Endpoint   string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		Endpoint:   geminiEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (g *GeminiClient) Configured() bool {
	return g.apiKey != ""
}

// GenerateReply sends the coach system prompt, the trailing history turns
// and the new user message, and returns the generated text.
func (g *GeminiClient) GenerateReply(ctx context.Context, message string, history []ChatTurn) (string, error) {
	if !g.Configured() {
		return "", ErrGeminiUnconfigured
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.IsUser {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: fitnessCoachPrompt + message}},
	})

	payload, err := json.Marshal(geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: 500,
			Temperature:     0.7,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", g.Endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
