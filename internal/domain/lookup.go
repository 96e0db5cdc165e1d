package domain

import "time"

// LookupRequest is a single word or phrase to look up and translate.
// Language codes are opaque and passed through to providers as given.
type LookupRequest struct {
	Text       string
	SourceLang string
	TargetLang string
}

// DictionaryEntry is the headline sense returned by the dictionary provider.
type DictionaryEntry struct {
	Definition   *string `json:"definition"`
	Example      *string `json:"example"`
	PartOfSpeech *string `json:"partOfSpeech"`
}

// LookupResult is the merged response for one lookup. Fields the upstream
// providers could not supply are nil.
type LookupResult struct {
	Input           string           `json:"input"`
	SourceLang      string           `json:"sourceLang"`
	TargetLang      string           `json:"targetLang"`
	Dictionary      *DictionaryEntry `json:"dictionary"`
	TranslatedText  *string          `json:"translatedText"`
	Transliteration *string          `json:"transliteration"`
}

// HistoryRecord is an immutable summary of a completed lookup.
type HistoryRecord struct {
	Input           string    `json:"input"`
	SourceLang      string    `json:"sourceLang"`
	TargetLang      string    `json:"targetLang"`
	TranslatedText  *string   `json:"translatedText"`
	Transliteration *string   `json:"transliteration"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewHistoryRecord captures the outcome of r at time at. The record shares no
// memory with r.
func NewHistoryRecord(r *LookupResult, at time.Time) HistoryRecord {
	return HistoryRecord{
		Input:           r.Input,
		SourceLang:      r.SourceLang,
		TargetLang:      r.TargetLang,
		TranslatedText:  cloneString(r.TranslatedText),
		Transliteration: cloneString(r.Transliteration),
		Timestamp:       at.UTC(),
	}
}

// Clone returns a deep copy of h.
func (h HistoryRecord) Clone() HistoryRecord {
	h.TranslatedText = cloneString(h.TranslatedText)
	h.Transliteration = cloneString(h.Transliteration)
	return h
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
