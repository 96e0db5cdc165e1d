package domain

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	baseEnglish = language.MustParseBase("en")
	baseTamil   = language.MustParseBase("ta")
)

// IsEnglish reports whether code names English, with or without a region
// or script subtag ("en", "EN", "en-GB").
func IsEnglish(code string) bool { return hasBase(code, baseEnglish) }

// IsTamil reports whether code names Tamil ("ta", "ta-IN", "ta-LK").
func IsTamil(code string) bool { return hasBase(code, baseTamil) }

func hasBase(code string, want language.Base) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	// Only an explicit base counts; "und" would otherwise guess English.
	base, conf := tag.Base()
	return conf == language.Exact && base == want
}
