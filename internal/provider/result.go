package provider

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word   string
	Senses []SenseResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
	Example      *string
}

// FirstSense returns the provider's headline sense, or nil if there is none.
func (r *DictionaryResult) FirstSense() *SenseResult {
	if r == nil || len(r.Senses) == 0 {
		return nil
	}
	return &r.Senses[0]
}
