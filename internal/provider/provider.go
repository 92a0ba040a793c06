// Package provider queries external subtitle providers for best-match subtitles.
package provider

import (
	"context"

	"github.com/subwatch/subwatch/internal/subtitles"
	"github.com/subwatch/subwatch/pkg/guess"
)

//go:generate mockgen -destination=mocks/mock_searcher.go -package=mocks github.com/subwatch/subwatch/internal/provider Searcher

// Video identifies the item a subtitle is searched for. OriginalName is the
// pre-organization release name, which providers match far better than the
// canonical library name.
type Video struct {
	OriginalName string
	Name         string // canonical library path
	Descriptor   *guess.Descriptor
}

// Request specifies a single search: one video, one language.
// Providers lists the providers to query; empty means all.
type Request struct {
	Video     Video
	Language  subtitles.Language
	Providers []string
}

// Result is the best match a provider returned for a request.
type Result struct {
	Provider string
	Language subtitles.Language
	Content  []byte // may be empty when the provider returned a placeholder match
}

// Searcher queries subtitle providers. Implementations return at most one
// best-match result per request, or ErrNoResults.
type Searcher interface {
	Search(ctx context.Context, req Request) (*Result, error)
}
