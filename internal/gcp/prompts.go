package gcp

// QuestionUserPrompt is filled with the question count and the full document text.
// The text is embedded verbatim; no truncation or chunking is applied.
const QuestionUserPrompt = "Extract %d important questions from the following content:\n\n%s"

// DefaultQuestionModel is the Gemini model used when none is configured.
const DefaultQuestionModel = "gemini-1.5-pro"
