package entity

import "time"

// Category classifies a dictionary entry. The values mirror the genres of
// Somali oral literature plus ordinary word classes.
type Category string

const (
	CategoryGabay        Category = "gabay"
	CategoryHees         Category = "hees"
	CategoryNoun         Category = "noun"
	CategoryVerb         Category = "verb"
	CategoryAdjective    Category = "adjective"
	CategoryAdverb       Category = "adverb"
	CategoryLiteraryTerm Category = "literary_term"
	CategoryOther        Category = "other"
)

// Categories lists every valid entry category.
var Categories = []Category{
	CategoryGabay,
	CategoryHees,
	CategoryNoun,
	CategoryVerb,
	CategoryAdjective,
	CategoryAdverb,
	CategoryLiteraryTerm,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// DictionaryEntry is a single term in the dictionary. Word and Definition are
// always non-empty for a persisted entry; everything else is optional.
// Poem fields are only meaningful for the gabay/hees categories.
type DictionaryEntry struct {
	ID              string    `json:"id"`
	Word            string    `json:"word"`
	Definition      string    `json:"definition"`
	LiteraryContext string    `json:"literaryContext,omitempty"`
	Examples        []string  `json:"examples,omitempty"`
	Synonyms        []string  `json:"synonyms,omitempty"`
	Category        Category  `json:"category,omitempty"`
	PoetName        string    `json:"poetName,omitempty"`
	PoemHistory     string    `json:"poemHistory,omitempty"`
	PoemText        string    `json:"poemText,omitempty"`
	DateAdded       time.Time `json:"dateAdded"`
	AddedBy         string    `json:"addedBy,omitempty"`
}

// NewDictionaryEntry carries the caller-supplied fields for a new entry;
// id, timestamp and attribution are assigned by the dictionary service.
type NewDictionaryEntry struct {
	Word            string   `json:"word"`
	Definition      string   `json:"definition"`
	LiteraryContext string   `json:"literaryContext,omitempty"`
	Examples        []string `json:"examples,omitempty"`
	Synonyms        []string `json:"synonyms,omitempty"`
	Category        Category `json:"category,omitempty"`
	PoetName        string   `json:"poetName,omitempty"`
	PoemHistory     string   `json:"poemHistory,omitempty"`
	PoemText        string   `json:"poemText,omitempty"`
}
