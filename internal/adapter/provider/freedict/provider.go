package freedict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/lexibridge/internal/domain"
	"github.com/heartmarshall/lexibridge/internal/provider"
)

// DefaultBaseURL is the public FreeDictionary API (English only).
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type jsonGetter interface {
	GetJSON(ctx context.Context, rawURL string, dst any) error
}

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL string
	gateway jsonGetter
	log     *slog.Logger
}

// NewProvider creates a Provider that calls baseURL through gateway.
func NewProvider(baseURL string, gateway jsonGetter, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		gateway: gateway,
		log:     logger.With("adapter", "freedict"),
	}
}

// FetchEntry fetches a dictionary entry for the given word.
// Returns nil, nil if the word is not found (HTTP 404 or an empty array).
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	var entries []apiEntry
	if err := p.gateway.GetJSON(ctx, reqURL, &entries); err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("freedict: fetch %q: %w", word, err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
}

// mapAPIResponse converts the API entries into a provider.DictionaryResult.
// Multiple entries (different etymologies) are merged: senses concatenated
// in meaning order, then definition order.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Senses: []provider.SenseResult{},
	}

	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			pos := optional(meaning.PartOfSpeech)
			for _, def := range meaning.Definitions {
				if strings.TrimSpace(def.Definition) == "" {
					continue
				}
				result.Senses = append(result.Senses, provider.SenseResult{
					Definition:   def.Definition,
					PartOfSpeech: pos,
					Example:      optional(def.Example),
				})
			}
		}
	}

	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
