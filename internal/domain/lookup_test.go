package domain

import (
	"testing"
	"time"
)

func TestNewHistoryRecord(t *testing.T) {
	t.Parallel()

	translated := "வணக்கம்"
	translit := "vaṇakkam"
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	rec := NewHistoryRecord(&LookupResult{
		Input:           "hello",
		SourceLang:      "en",
		TargetLang:      "ta",
		TranslatedText:  &translated,
		Transliteration: &translit,
	}, at)

	if rec.Input != "hello" || rec.SourceLang != "en" || rec.TargetLang != "ta" {
		t.Errorf("unexpected identity fields: %+v", rec)
	}
	if rec.TranslatedText == nil || *rec.TranslatedText != translated {
		t.Errorf("TranslatedText = %v, want %q", rec.TranslatedText, translated)
	}
	if rec.Transliteration == nil || *rec.Transliteration != translit {
		t.Errorf("Transliteration = %v, want %q", rec.Transliteration, translit)
	}
	if rec.Timestamp.Location() != time.UTC || !rec.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v in UTC", rec.Timestamp, at)
	}
}

func TestNewHistoryRecord_AbsentFields(t *testing.T) {
	t.Parallel()

	rec := NewHistoryRecord(&LookupResult{Input: "xyz", SourceLang: "en", TargetLang: "fr"}, time.Now())

	if rec.TranslatedText != nil || rec.Transliteration != nil {
		t.Errorf("expected nil optional fields, got %+v", rec)
	}
}

func TestNewHistoryRecord_DoesNotShareResultStrings(t *testing.T) {
	t.Parallel()

	translated := "வணக்கம்"
	translit := "vaṇakkam"
	result := &LookupResult{Input: "hello", TranslatedText: &translated, Transliteration: &translit}

	rec := NewHistoryRecord(result, time.Now())
	*result.TranslatedText = "changed"
	*result.Transliteration = "changed"

	if *rec.TranslatedText != "வணக்கம்" || *rec.Transliteration != "vaṇakkam" {
		t.Errorf("record follows the result: %q / %q", *rec.TranslatedText, *rec.Transliteration)
	}
}

func TestHistoryRecord_Clone(t *testing.T) {
	t.Parallel()

	translated := "hola"
	orig := HistoryRecord{Input: "hello", TranslatedText: &translated}

	cp := orig.Clone()
	*cp.TranslatedText = "changed"

	if *orig.TranslatedText != "hola" {
		t.Errorf("clone shares TranslatedText: %q", *orig.TranslatedText)
	}
	if cp.Transliteration != nil {
		t.Errorf("nil field should stay nil, got %v", cp.Transliteration)
	}
}
