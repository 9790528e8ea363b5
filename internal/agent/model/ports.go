package model

import "context"

// Translator turns a Korean word or phrase into English.
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Abbreviator returns camelCase abbreviation candidates for an English word
// or phrase. An empty slice with a nil error means no good abbreviation exists.
type Abbreviator interface {
	Abbreviate(ctx context.Context, word string) ([]string, error)
}

// ConceptExtractor returns multi-line analysis text where concept lines look
// like "label: camelVariant, abbr1, abbr2".
type ConceptExtractor interface {
	Extract(ctx context.Context, text string) (string, error)
}
