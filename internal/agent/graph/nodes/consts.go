package nodes

// Graph node keys.
const (
	NodeInputClassifier  = "input_classifier"
	NodeWordProcessor    = "word_processor"
	NodeTextProcessor    = "text_processor"
	NodeCommandProcessor = "command_processor"
)

// Degraded values used when a collaborator fails.
const (
	TranslationErrorSentinel = "translation_error"
	TextProcessingError      = "Error processing text."
)
