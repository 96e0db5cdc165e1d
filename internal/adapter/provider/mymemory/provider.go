package mymemory

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/lexibridge/internal/domain"
)

// DefaultBaseURL is the public MyMemory translation API.
const DefaultBaseURL = "https://api.mymemory.translated.net"

const providerName = "mymemory"

type jsonGetter interface {
	GetJSON(ctx context.Context, rawURL string, dst any) error
}

// Provider translates text through the MyMemory API.
type Provider struct {
	baseURL string
	email   string
	gateway jsonGetter
	log     *slog.Logger
}

// NewProvider creates a Provider. email may be empty; when set it is sent
// as the "de" parameter.
func NewProvider(baseURL, email string, gateway jsonGetter, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		gateway: gateway,
		log:     logger.With("adapter", "mymemory"),
	}
}

// Translate returns the translation of text from sourceLang to targetLang.
// Returns nil, nil when the provider answers without a translation.
func (p *Provider) Translate(ctx context.Context, text, sourceLang, targetLang string) (*string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", sourceLang+"|"+targetLang)
	if p.email != "" {
		q.Set("de", p.email)
	}
	reqURL := p.baseURL + "/get?" + q.Encode()

	p.log.DebugContext(ctx, "mymemory request",
		slog.String("langpair", sourceLang+"|"+targetLang),
		slog.Int("chars", len(text)),
	)

	var resp apiResponse
	if err := p.gateway.GetJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("mymemory: translate: %w", err)
	}

	// MyMemory reports rejected requests (bad language pair, quota) with
	// HTTP 200 and the real status in the body.
	if resp.ResponseStatus != 0 && resp.ResponseStatus != 200 {
		return nil, fmt.Errorf("mymemory: translate: %w", &domain.UpstreamError{
			Provider:   providerName,
			StatusCode: int(resp.ResponseStatus),
			Cause:      strings.TrimSpace(resp.ResponseDetails),
		})
	}

	translated := strings.TrimSpace(resp.ResponseData.TranslatedText)
	if translated == "" {
		return nil, nil
	}

	p.log.DebugContext(ctx, "mymemory response",
		slog.Float64("match", resp.ResponseData.Match),
		slog.Bool("quota_finished", resp.QuotaFinished),
	)

	return &translated, nil
}
