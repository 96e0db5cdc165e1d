package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lexibridge/internal/domain"
)

const (
	msgMissingParams = "Missing text or language params"
	msgNoTerm        = "No term"
	msgServerError   = "Server error"

	maxRequestBody = 64 << 10
)

type lookupService interface {
	Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error)
	Recent(ctx context.Context) []domain.HistoryRecord
}

// LookupHandler serves the lookup and history endpoints.
type LookupHandler struct {
	svc           lookupService
	defaultSource string
	defaultTarget string
	log           *slog.Logger
}

// NewLookupHandler creates a LookupHandler. defaultSource and defaultTarget
// are the language pair used by single-word lookups.
func NewLookupHandler(svc lookupService, defaultSource, defaultTarget string, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		svc:           svc,
		defaultSource: defaultSource,
		defaultTarget: defaultTarget,
		log:           logger.With("handler", "lookup"),
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Translate handles POST /api/translate.
func (h *LookupHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var body translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingParams, "")
		return
	}
	if blank(body.Text) || blank(body.SourceLang) || blank(body.TargetLang) {
		writeError(w, http.StatusBadRequest, msgMissingParams, "")
		return
	}

	h.lookup(w, r, domain.LookupRequest{
		Text:       body.Text,
		SourceLang: body.SourceLang,
		TargetLang: body.TargetLang,
	}, msgMissingParams)
}

// Word handles GET /api/word/{term} using the default language pair.
func (h *LookupHandler) Word(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if blank(term) {
		writeError(w, http.StatusBadRequest, msgNoTerm, "")
		return
	}

	h.lookup(w, r, domain.LookupRequest{
		Text:       term,
		SourceLang: h.defaultSource,
		TargetLang: h.defaultTarget,
	}, msgNoTerm)
}

// Recent handles GET /api/recent.
func (h *LookupHandler) Recent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Recent(r.Context()))
}

func (h *LookupHandler) lookup(w http.ResponseWriter, r *http.Request, req domain.LookupRequest, validationMsg string) {
	result, err := h.svc.Lookup(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, validationMsg, "")
			return
		}
		h.log.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
