package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akozyreva/marketing-kit/internal/logger"
)

// TextGenFacade calls a Gemini-style generateContent REST endpoint to
// produce marketing copy from a free-form prompt.
type TextGenFacade struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewTextGenFacade creates a facade for the text generation provider.
// A nil client falls back to http.DefaultClient.
func NewTextGenFacade(baseURL, apiKey, model string, client *http.Client) *TextGenFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &TextGenFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  client,
	}
}

type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text       string              `json:"text,omitempty"`
	InlineData *generateInlineData `json:"inline_data,omitempty"`
}

type generateInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt to the model and returns the generated
// text. A non-empty image is attached as an inline data part so the
// model can describe the actual product; imageMIME defaults to
// image/png when empty. All parts of the first candidate are
// concatenated.
func (f *TextGenFacade) GenerateText(ctx context.Context, prompt string, image []byte, imageMIME string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", f.baseURL, f.model, f.apiKey)

	parts := []generatePart{{Text: prompt}}
	if len(image) > 0 {
		if imageMIME == "" {
			imageMIME = "image/png"
		}
		parts = append(parts, generatePart{InlineData: &generateInlineData{
			MIMEType: imageMIME,
			Data:     base64.StdEncoding.EncodeToString(image),
		}})
	}

	reqBody := generateContentRequest{
		Contents: []generateContent{
			{Parts: parts},
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("text generation request failed", "model", f.model, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Errorw("text generation provider returned non-200",
			"model", f.model, "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("text generation provider returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("text generation provider returned no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
