package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPSearcher queries a subtitle search service over its JSON API.
type HTTPSearcher struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHTTPSearcher creates a searcher for the given service endpoint.
func NewHTTPSearcher(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *HTTPSearcher {
	if log == nil {
		log = slog.Default()
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSearcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With("component", "provider"),
	}
}

// searchResponse is the service's best-match payload.
type searchResponse struct {
	Provider string `json:"provider"`
	Language string `json:"language"`
	Content  string `json:"content"` // base64
}

// Search asks the service for the single best match for the request.
// Returns ErrNoResults when nothing matched and ErrNotVideo when the service
// rejected the item as not a video file.
func (s *HTTPSearcher) Search(ctx context.Context, req Request) (*Result, error) {
	u, err := url.Parse(s.baseURL + "/api/v1/search")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("name", req.Video.OriginalName)
	q.Set("lang", req.Language.Code)
	if len(req.Providers) > 0 {
		q.Set("providers", strings.Join(req.Providers, ","))
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if s.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrNoResults
	case http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrNotVideo, req.Video.OriginalName)
	default:
		return nil, fmt.Errorf("search request failed: %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	content, err := base64.StdEncoding.DecodeString(body.Content)
	if err != nil {
		return nil, fmt.Errorf("decode subtitle content: %w", err)
	}

	s.log.Debug("search hit", "provider", body.Provider, "language", req.Language.Code, "bytes", len(content))
	return &Result{
		Provider: body.Provider,
		Language: req.Language,
		Content:  content,
	}, nil
}
