package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/akozyreva/marketing-kit/internal/logger"
)

// ImageSearchFacade looks up an illustrative product image URL via a
// Google Custom Search style REST endpoint.
type ImageSearchFacade struct {
	baseURL  string
	apiKey   string
	engineID string
	client   *http.Client
}

// NewImageSearchFacade creates a facade for the image search provider.
// A nil client falls back to http.DefaultClient.
func NewImageSearchFacade(baseURL, apiKey, engineID string, client *http.Client) *ImageSearchFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &ImageSearchFacade{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		engineID: engineID,
		client:   client,
	}
}

type imageSearchResponse struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
}

// SearchImageURL returns the first image URL matching the query, or ""
// when the provider finds nothing. A missing image is not an error.
func (f *ImageSearchFacade) SearchImageURL(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("q", query+" product marketing image")
	params.Set("cx", f.engineID)
	params.Set("key", f.apiKey)
	params.Set("searchType", "image")
	params.Set("num", "1")
	params.Set("imgSize", "LARGE")
	params.Set("safe", "high")

	reqURL := fmt.Sprintf("%s/customsearch/v1?%s", f.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("image search request failed", "query", query, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("image search provider returned non-200",
			"query", query, "status", resp.StatusCode)
		return "", fmt.Errorf("image search provider returned status %d", resp.StatusCode)
	}

	var parsed imageSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Items) == 0 {
		return "", nil
	}

	return parsed.Items[0].Link, nil
}
