package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexibridge/pkg/ctxutil"
)

func captureRequestID(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	t.Parallel()

	incomingID := uuid.NewString()
	var gotID string

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incomingID)
	rec := httptest.NewRecorder()

	RequestID()(captureRequestID(&gotID)).ServeHTTP(rec, req)

	assert.Equal(t, incomingID, gotID)
	assert.Equal(t, incomingID, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_GenerateNew(t *testing.T) {
	t.Parallel()

	var gotID string
	rec := httptest.NewRecorder()

	RequestID()(captureRequestID(&gotID)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(gotID)
	require.NoError(t, err)
	assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_OversizedIncomingReplaced(t *testing.T) {
	t.Parallel()

	var gotID string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))

	RequestID()(captureRequestID(&gotID)).ServeHTTP(httptest.NewRecorder(), req)

	_, err := uuid.Parse(gotID)
	assert.NoError(t, err)
}
