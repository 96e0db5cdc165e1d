package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexibridge/internal/domain"
)

// Lookup validates req, queries the providers and records the outcome.
//
// Only validation can fail the call. A provider failure leaves the matching
// result field nil and the lookup carries on.
func (s *Service) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	req, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	result := &domain.LookupResult{
		Input:      req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	}

	// 1. Dictionary entry; the provider only covers English.
	if domain.IsEnglish(req.SourceLang) {
		result.Dictionary = s.fetchDictionary(ctx, req.Text)
	}

	// 2. Translate the definition when there is one, otherwise the input.
	textToTranslate := req.Text
	if d := result.Dictionary; d != nil && d.Definition != nil && strings.TrimSpace(*d.Definition) != "" {
		textToTranslate = *d.Definition
	}
	result.TranslatedText = s.translate(ctx, textToTranslate, req.SourceLang, req.TargetLang)

	// 3. Transliterate the Tamil side of the pair.
	if domain.IsTamil(req.TargetLang) {
		result.Transliteration = s.transliterateOptional(result.TranslatedText)
	} else {
		result.Transliteration = s.transliterateOptional(&result.Input)
	}

	// 4. Record the attempt, whatever the providers returned.
	s.history.Record(domain.NewHistoryRecord(result, s.now()))

	s.log.InfoContext(ctx, "lookup completed",
		slog.String("input", result.Input),
		slog.String("source_lang", result.SourceLang),
		slog.String("target_lang", result.TargetLang),
		slog.Bool("has_dictionary", result.Dictionary != nil),
		slog.Bool("has_translation", result.TranslatedText != nil),
	)

	return result, nil
}

func validateRequest(req domain.LookupRequest) (domain.LookupRequest, error) {
	req.Text = strings.TrimSpace(req.Text)
	req.SourceLang = strings.TrimSpace(req.SourceLang)
	req.TargetLang = strings.TrimSpace(req.TargetLang)

	var errs []domain.FieldError
	if req.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "no term supplied"})
	}
	if req.SourceLang == "" {
		errs = append(errs, domain.FieldError{Field: "sourceLang", Message: "required"})
	}
	if req.TargetLang == "" {
		errs = append(errs, domain.FieldError{Field: "targetLang", Message: "required"})
	}
	if len(errs) > 0 {
		return req, domain.NewValidationErrors(errs)
	}
	return req, nil
}

// fetchDictionary returns the headline dictionary entry for word, or nil if
// the provider has none or failed.
func (s *Service) fetchDictionary(ctx context.Context, word string) *domain.DictionaryEntry {
	res, err := s.dictProvider.FetchEntry(ctx, word)
	if err != nil {
		s.logUpstreamFailure(ctx, "dictionary provider error, continuing without definition", word, err)
		return nil
	}

	sense := res.FirstSense()
	if sense == nil {
		s.log.DebugContext(ctx, "no dictionary entry", slog.String("word", word))
		return nil
	}

	def := sense.Definition
	return &domain.DictionaryEntry{
		Definition:   &def,
		Example:      sense.Example,
		PartOfSpeech: sense.PartOfSpeech,
	}
}

// translate returns the translation of text, or nil if the provider failed
// or returned nothing.
func (s *Service) translate(ctx context.Context, text, sourceLang, targetLang string) *string {
	translated, err := s.transProvider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		s.logUpstreamFailure(ctx, "translation provider error, continuing without translation", text, err)
		return nil
	}
	return translated
}

func (s *Service) transliterateOptional(text *string) *string {
	if text == nil {
		return nil
	}
	out := s.transliterate(*text)
	return &out
}

func (s *Service) logUpstreamFailure(ctx context.Context, msg, text string, err error) {
	attrs := []any{
		slog.String("text", text),
		slog.String("error", err.Error()),
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		attrs = append(attrs,
			slog.String("provider", ue.Provider),
			slog.Bool("timeout", ue.Timeout),
			slog.Int("status", ue.StatusCode),
		)
	}
	s.log.WarnContext(ctx, msg, attrs...)
}
