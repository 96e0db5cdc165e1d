// Package lookup orchestrates dictionary and translation providers into a
// single best-effort lookup result and keeps the recent-lookup history.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexibridge/internal/domain"
	"github.com/heartmarshall/lexibridge/internal/provider"
	"github.com/heartmarshall/lexibridge/internal/translit"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

type translationProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*string, error)
}

type historyStore interface {
	Record(rec domain.HistoryRecord)
	Recent() []domain.HistoryRecord
}

// Service implements lookups and exposes the recent-lookup history.
type Service struct {
	log           *slog.Logger
	dictProvider  dictionaryProvider
	transProvider translationProvider
	history       historyStore
	transliterate func(string) string
	now           func() time.Time
}

// NewService creates a lookup Service. The history store is owned by the
// service; nothing else should write to it.
func NewService(
	logger *slog.Logger,
	dictProvider dictionaryProvider,
	transProvider translationProvider,
	history historyStore,
) *Service {
	return &Service{
		log:           logger.With("service", "lookup"),
		dictProvider:  dictProvider,
		transProvider: transProvider,
		history:       history,
		transliterate: translit.Latin,
		now:           time.Now,
	}
}

// Recent returns the most recent lookups, newest first.
func (s *Service) Recent(_ context.Context) []domain.HistoryRecord {
	return s.history.Recent()
}
