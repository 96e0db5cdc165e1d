package mymemory

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexibridge/internal/adapter/upstream"
	"github.com/heartmarshall/lexibridge/internal/config"
	"github.com/heartmarshall/lexibridge/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(baseURL, email string) *Provider {
	logger := newTestLogger()
	gw := upstream.New(providerName, config.UpstreamConfig{Timeout: time.Second}, logger)
	return NewProvider(baseURL, email, gw, logger)
}

func TestProvider_Translate_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "a greeting", r.URL.Query().Get("q"))
		assert.Equal(t, "en|ta", r.URL.Query().Get("langpair"))
		assert.Empty(t, r.URL.Query().Get("de"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"வணக்கம்","match":0.98},"responseStatus":200,"responseDetails":""}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "")
	got, err := p.Translate(context.Background(), "a greeting", "en", "ta")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "வணக்கம்", *got)
}

func TestProvider_Translate_SendsEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ops@example.com", r.URL.Query().Get("de"))
		w.Write([]byte(`{"responseData":{"translatedText":"bonjour"},"responseStatus":200}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL+"/", "ops@example.com")
	got, err := p.Translate(context.Background(), "hello", "en", "fr")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bonjour", *got)
}

func TestProvider_Translate_EmptyTranslation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"  "},"responseStatus":200}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "")
	got, err := p.Translate(context.Background(), "hello", "en", "ta")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProvider_Translate_RejectedInBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "numeric status",
			body: `{"responseData":{"translatedText":"INVALID LANGUAGE PAIR SPECIFIED"},"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR SPECIFIED"}`,
		},
		{
			name: "quoted status",
			body: `{"responseData":{"translatedText":"INVALID LANGUAGE PAIR SPECIFIED"},"responseStatus":"403","responseDetails":"INVALID LANGUAGE PAIR SPECIFIED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := newTestProvider(srv.URL, "")
			got, err := p.Translate(context.Background(), "hello", "en", "zz")

			assert.Nil(t, got)
			var ue *domain.UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, http.StatusForbidden, ue.StatusCode)
			assert.Equal(t, "INVALID LANGUAGE PAIR SPECIFIED", ue.Cause)
		})
	}
}

func TestProvider_Translate_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "")
	got, err := p.Translate(context.Background(), "hello", "en", "ta")

	assert.Nil(t, got)
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestStatusCode_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want statusCode
	}{
		{in: `200`, want: 200},
		{in: `"429"`, want: 429},
		{in: `null`, want: 0},
		{in: `""`, want: 0},
	}
	for _, tt := range tests {
		var got statusCode
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	var bad statusCode
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}
