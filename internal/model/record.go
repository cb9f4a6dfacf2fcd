package model

import "strings"

// MinRecordFields is the number of columns a catalog row must provide
const MinRecordFields = 12

// Record holds the knowledge-base entry for one name. Records are immutable
// once loaded.
type Record struct {
	Number                     int    // 1-based name number
	ScriptForm                 string // Hebrew letters
	Transliteration            string
	AstrologicalCorrespondence string
	Guardian                   string // associated archangel
	Keyword                    string
	Meaning                    string
	PracticalApplication       string
	ReflectiveQuestion         string
	MeditationPractice         string
	ScriptureReference         string // e.g. "Psalm 3:4"
	ScriptureText              string
}

// Position returns the 0-based sequence position of the record
func (r *Record) Position() int {
	return r.Number - 1
}

// GetDisplayTitle returns transliteration, script form, or the number in
// order of preference
func (r *Record) GetDisplayTitle() string {
	if t := strings.TrimSpace(r.Transliteration); t != "" {
		return t
	}
	if r.ScriptForm != "" {
		return r.ScriptForm
	}
	return CounterLabel(r.Position())
}

// Section is a titled block of record text used by detail views
type Section struct {
	Title   string
	Content string
}

// Sections returns the non-empty descriptive fields of the record in
// display order
func (r *Record) Sections() []Section {
	all := []Section{
		{Title: "Meaning", Content: r.Meaning},
		{Title: "Keyword", Content: r.Keyword},
		{Title: "Practical Application", Content: r.PracticalApplication},
		{Title: "Reflective Question", Content: r.ReflectiveQuestion},
		{Title: "Meditation Practice", Content: r.MeditationPractice},
		{Title: "Astrological Correspondence", Content: r.AstrologicalCorrespondence},
		{Title: "Guardian Angel", Content: r.Guardian},
		{Title: r.scriptureTitle(), Content: r.ScriptureText},
	}

	sections := make([]Section, 0, len(all))
	for _, s := range all {
		if strings.TrimSpace(s.Content) != "" {
			sections = append(sections, s)
		}
	}
	return sections
}

func (r *Record) scriptureTitle() string {
	if r.ScriptureReference == "" {
		return "Scripture"
	}
	return r.ScriptureReference
}
