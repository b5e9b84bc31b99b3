package model

// Language is an ISO 639-1 language tag.
type Language string

const (
	LanguagePortuguese Language = "pt"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
)

// DefaultLanguage is the fallback when detection is ambiguous or fails.
const DefaultLanguage = LanguagePortuguese

// SupportedLanguages is the subset the bot can actually converse in.
// The detector recognizes more tags than this; anything outside the set
// short-circuits with an "unsupported language" reply.
var SupportedLanguages = map[Language]bool{
	LanguagePortuguese: true,
	LanguageEnglish:    true,
}

// Supported reports whether the bot converses in lang.
func Supported(lang Language) bool {
	return SupportedLanguages[lang]
}

func (l Language) String() string { return string(l) }
