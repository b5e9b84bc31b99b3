// Package language classifies text fragments into the detector vocabulary
// {pt, en, es, fr}. Detection is best-effort and never fails: ambiguous or
// too-short input falls back to the default language.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/3moscas/tgbot/internal/model"
)

// Detector wraps a lingua language detector restricted to the vocabulary
// the bot cares about. Restricting the candidate set keeps short-fragment
// detection usable; the full lingua inventory misclassifies one-word
// Portuguese inputs far more often.
type Detector struct {
	engine lingua.LanguageDetector
}

var isoToModel = map[string]model.Language{
	"PT": model.LanguagePortuguese,
	"EN": model.LanguageEnglish,
	"ES": model.LanguageSpanish,
	"FR": model.LanguageFrench,
}

// NewDetector builds the detector. The underlying models are loaded once
// and the detector is safe for concurrent use.
func NewDetector() *Detector {
	engine := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.Portuguese,
			lingua.English,
			lingua.Spanish,
			lingua.French,
		).
		Build()
	return &Detector{engine: engine}
}

// Detect returns the most likely language of text, falling back to the
// default language when the engine cannot decide.
func (d *Detector) Detect(text string) model.Language {
	if strings.TrimSpace(text) == "" {
		return model.DefaultLanguage
	}
	detected, ok := d.engine.DetectLanguageOf(text)
	if !ok {
		return model.DefaultLanguage
	}
	lang, ok := isoToModel[detected.IsoCode639_1().String()]
	if !ok {
		return model.DefaultLanguage
	}
	return lang
}
