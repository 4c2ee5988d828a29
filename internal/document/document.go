// Package document normalizes raw parser output into a canonical metadata
// record. The heavy lifting (format parsing, language identification) is
// delegated; this package selects fields with fallback chains across the
// inconsistently named keys different formats emit, preprocesses the
// extracted text, and exposes an ordered view of the result.
package document

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docmeta/internal/textutil"
)

// LangUnknown is the sentinel language code used when detection fails.
const LangUnknown = "unk"

// Parser extracts plain text and a raw metadata map from a document file.
// It may fail on unreadable or unsupported files; the normalizer treats any
// failure as an empty document.
type Parser interface {
	Parse(path string) (text string, metadata map[string]any, err error)
}

// Detector identifies the language of a text.
type Detector interface {
	Detect(text string) (string, error)
}

// Normalizer builds Documents. It is safe to reuse across files.
type Normalizer struct {
	parser   Parser
	detector Detector
	log      *slog.Logger
}

func NewNormalizer(p Parser, d Detector, log *slog.Logger) *Normalizer {
	if log == nil {
		log = slog.Default()
	}
	return &Normalizer{parser: p, detector: d, log: log}
}

// Document is the fully resolved result for one file. It is immutable after
// Normalize returns.
type Document struct {
	Path  string
	Lines []string
	Words int
	Chars int

	Record Record

	// MetadataError is set when the parser produced no metadata map at all.
	// Metadata-derived fields stay null in that case; counts and language
	// are still computed from the text.
	MetadataError bool
}

// Normalize parses the file at path and resolves its metadata record. When
// joinLines is true all cleaned lines collapse into a single unit; otherwise
// consecutive non-blank lines are grouped into paragraph units.
//
// Parse failures are not surfaced: the file is treated as an empty document
// and a warning is logged.
func (n *Normalizer) Normalize(path string, joinLines bool) *Document {
	text, metadata, err := n.parser.Parse(path)
	if err != nil {
		n.log.Warn("parse failed, treating as empty document", "path", path, "error", err)
		text, metadata = "", nil
	}

	d := &Document{Path: path}
	d.Lines = preprocessLines(text, joinLines)

	for _, line := range d.Lines {
		d.Words += len(wordRe.FindAllString(line, -1))
		d.Chars += utf8.RuneCountInString(line)
	}

	if metadata == nil {
		d.MetadataError = true
	} else {
		d.Record = resolveRecord(metadata)
	}

	// Best-effort detection always overrides any parser-supplied language tag.
	d.Record.Lang = n.detectLang(strings.Join(d.Lines, " "))

	return d
}

func (n *Normalizer) detectLang(text string) string {
	code, err := n.detector.Detect(text)
	if err != nil {
		return LangUnknown
	}
	return code
}

var wordRe = regexp.MustCompile(`\w+`)

// preprocessLines splits raw text on newlines and cleans each line. With
// join=true the cleaned non-blank lines become one space-joined unit. With
// join=false consecutive non-blank lines form a paragraph unit and a blank
// line starts a new one; empty units are dropped.
func preprocessLines(raw string, join bool) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")

	if join {
		var parts []string
		for _, line := range lines {
			if c := textutil.Clean(line); c != "" {
				parts = append(parts, c)
			}
		}
		if len(parts) == 0 {
			return nil
		}
		return []string{strings.Join(parts, " ")}
	}

	var groups []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range lines {
		c := textutil.Clean(line)
		if c == "" {
			flush()
			continue
		}
		current = append(current, c)
	}
	flush()

	return groups
}
