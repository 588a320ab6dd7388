package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"skillbite/config"
)

// GeminiService is the generative-text collaborator. Implementations must
// return the raw model text; callers own extraction and parsing.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

type geminiClient struct {
	apiUrl string
	apiKey string
	client *resty.Client
}

// NewGeminiClient builds the client from loaded config. A missing key fails
// here at startup, not deep inside a request.
func NewGeminiClient() (GeminiService, error) {
	cfg := config.AppConfig
	if cfg.GeminiApiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	return &geminiClient{
		apiUrl: cfg.GeminiApiUrl,
		apiKey: cfg.GeminiApiKey,
		client: resty.New().SetTimeout(time.Duration(cfg.HttpTimeoutSeconds) * time.Second),
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *geminiClient) GenerateText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload := geminiRequest{}
	payload.Contents = []struct {
		Parts []geminiPart `json:"parts"`
	}{{Parts: []geminiPart{{Text: prompt}}}}
	payload.GenerationConfig.Temperature = temperature
	payload.GenerationConfig.MaxOutputTokens = maxTokens

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(payload).
		Post(g.apiUrl)
	if err != nil {
		return "", NewAppError(ErrTransport, "generative service unreachable").WithRaw(err.Error())
	}
	if resp.StatusCode() != 200 {
		return "", NewAppError(ErrTransport, fmt.Sprintf("generative service returned status %d", resp.StatusCode())).WithRaw(resp.String())
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", NewAppError(ErrTransport, "invalid generative service envelope").WithRaw(resp.String())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", NewAppError(ErrTransport, "generative service returned no candidates").WithRaw(resp.String())
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
