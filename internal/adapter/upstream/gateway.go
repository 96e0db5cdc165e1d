package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/lexibridge/internal/config"
	"github.com/heartmarshall/lexibridge/internal/domain"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 1 << 20

// Gateway performs outbound JSON GETs to one external provider. Every call is
// a single attempt under a fixed deadline; all failures come back as
// *domain.UpstreamError.
type Gateway struct {
	provider   string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// New creates a Gateway for the named provider. When cfg.BreakerEnabled is
// set, consecutive server-side failures open a circuit breaker and later
// calls fail fast until the cooldown elapses.
func New(provider string, cfg config.UpstreamConfig, logger *slog.Logger) *Gateway {
	g := &Gateway{
		provider:   provider,
		timeout:    cfg.Timeout,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "upstream", "provider", provider),
	}
	if cfg.BreakerEnabled {
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        provider,
			MaxRequests: 1,
			Timeout:     cfg.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerFailures
			},
			IsSuccessful: func(err error) bool {
				var ue *domain.UpstreamError
				if errors.As(err, &ue) {
					return !ue.IsServerSide()
				}
				return err == nil
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				g.log.Warn("circuit breaker state changed",
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
	return g
}

// Provider returns the provider name used in errors and logs.
func (g *Gateway) Provider() string { return g.provider }

// BreakerState reports the circuit breaker state ("closed", "half-open",
// "open"), or "disabled" when the gateway runs without one.
func (g *Gateway) BreakerState() string {
	if g.breaker == nil {
		return "disabled"
	}
	return g.breaker.State().String()
}

// GetJSON fetches rawURL and decodes the JSON body into dst.
func (g *Gateway) GetJSON(ctx context.Context, rawURL string, dst any) error {
	if g.breaker == nil {
		return g.call(ctx, rawURL, dst)
	}

	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, g.call(ctx, rawURL, dst)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.UpstreamError{Provider: g.provider, Cause: "circuit open", Err: err}
	}
	return err
}

func (g *Gateway) call(ctx context.Context, rawURL string, dst any) error {
	start := time.Now()
	_, err := CallWithDeadline(ctx, g.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.do(ctx, rawURL, dst)
	})
	if err != nil {
		err = g.asUpstreamError(err)
		g.log.DebugContext(ctx, "upstream call failed",
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return err
	}

	g.log.DebugContext(ctx, "upstream call succeeded", slog.Duration("duration", time.Since(start)))
	return nil
}

func (g *Gateway) do(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &domain.UpstreamError{Provider: g.provider, Cause: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)) //nolint:errcheck
		return &domain.UpstreamError{
			Provider:   g.provider,
			StatusCode: resp.StatusCode,
			Cause:      http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.UpstreamError{Provider: g.provider, StatusCode: resp.StatusCode, Cause: "read body", Err: err}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &domain.UpstreamError{Provider: g.provider, StatusCode: resp.StatusCode, Cause: "decode json", Err: err}
	}

	return nil
}

// asUpstreamError normalizes any failure from a call into *domain.UpstreamError.
func (g *Gateway) asUpstreamError(err error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && !errors.Is(err, context.DeadlineExceeded) {
		return ue
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.UpstreamError{
			Provider: g.provider,
			Timeout:  true,
			Cause:    fmt.Sprintf("no response within %s", g.timeout),
			Err:      err,
		}
	}

	return &domain.UpstreamError{Provider: g.provider, Cause: err.Error(), Err: err}
}
