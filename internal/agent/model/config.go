package model

// ================ Config ================
type ConversationConfig struct {
	TTL              string `envconfig:"CONVERSATION_TTL" default:"24h"`
	HistoryLimit     int    `envconfig:"CONVERSATION_HISTORY_LIMIT" default:"50"`
	DefaultCaseStyle string `envconfig:"DEFAULT_CASE_STYLE" default:"camelCase"`
}

type TranslationModelConfig struct {
	Model       string  `envconfig:"TRANSLATION_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"TRANSLATION_MAX_TOKENS" default:"64"`
	Temperature float32 `envconfig:"TRANSLATION_TEMPERATURE" default:"0"`
}

type AbbreviationModelConfig struct {
	Model       string  `envconfig:"ABBREVIATION_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"ABBREVIATION_MAX_TOKENS" default:"128"`
	Temperature float32 `envconfig:"ABBREVIATION_TEMPERATURE" default:"0.2"`
}

type ConceptModelConfig struct {
	Model       string  `envconfig:"CONCEPT_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"CONCEPT_MAX_TOKENS" default:"1024"`
	Temperature float32 `envconfig:"CONCEPT_TEMPERATURE" default:"0.3"`
}
