package langdetect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUnknown is returned when the detector cannot identify a language with
// enough confidence (or the input is empty).
var ErrUnknown = errors.New("language could not be detected")

// Detector identifies the language of a text. Building it loads the language
// models, so construct one at startup and reuse it; detection itself is
// deterministic for a given input.
type Detector struct {
	inner lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the detected language, or ErrUnknown.
func (d *Detector) Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrUnknown
	}

	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", ErrUnknown
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
