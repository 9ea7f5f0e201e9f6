package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	genModel = "gemini-3-flash-preview"

	// Stock lines the menu falls back to: the first when the model
	// answers with nothing, the second when the call fails outright.
	emptyDescription    = "A delicious addition to our premium menu selection."
	fallbackDescription = "Crafted with the finest ingredients and passion for quality."
)

// DescriptionService drafts menu copy through an external generation
// API. Failures never surface past this boundary; callers always get a
// usable string.
type DescriptionService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewDescriptionService(baseURL, apiKey string) *DescriptionService {
	return &DescriptionService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type genPart struct {
	Text string `json:"text"`
}
type genContent struct {
	Parts []genPart `json:"parts"`
}
type genConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}
type genRequest struct {
	Contents         []genContent `json:"contents"`
	GenerationConfig genConfig    `json:"generationConfig"`
}
type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

func (s *DescriptionService) Generate(name, category string) string {
	if s.apiKey == "" {
		return fallbackDescription
	}

	prompt := fmt.Sprintf(
		`Generate a short, enticing, and sophisticated menu description (max 20 words) for a "%s" in the "%s" category of a premium coffee shop. Make it sound delicious.`,
		name, category,
	)

	req := genRequest{
		Contents:         []genContent{{Parts: []genPart{{Text: prompt}}}},
		GenerationConfig: genConfig{Temperature: 0.7, TopP: 0.8, MaxOutputTokens: 50},
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fallbackDescription
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, genModel, s.apiKey)
	res, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fallbackDescription
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fallbackDescription
	}

	var out genResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fallbackDescription
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return emptyDescription
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return emptyDescription
	}
	return text
}
