package gemini

import "fmt"

const summaryPromptTemplate = `You are a conversational assistant. Summarize the following text in at most three sentences. Answer in %s.

Text:
%s`

var languageNames = map[string]string{
	"pt": "Portuguese",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
}

// BuildSummaryPrompt assembles the summarization prompt for the given
// ISO 639-1 language code. Unknown codes fall back to Portuguese.
func BuildSummaryPrompt(text string, language string) string {
	name, ok := languageNames[language]
	if !ok {
		name = "Portuguese"
	}
	return fmt.Sprintf(summaryPromptTemplate, name, text)
}
