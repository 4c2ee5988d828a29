package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Result is the raw output of a format parser: extracted plain text plus a
// metadata map keyed by the source format's native field names. Keys are
// deliberately not normalized here; the document layer resolves them through
// its fallback chains.
type Result struct {
	Text     string
	Metadata map[string]any
}

// Parser converts raw document bytes into a Result.
type Parser interface {
	Parse(r io.Reader, filename string) (*Result, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Files parses documents from the filesystem. It augments format-parser
// metadata with file-level fields (filesize, resource name) and optionally
// records parse latencies.
type Files struct {
	PDFFallbackPdftotext bool
	OCRFallback          bool
	OCRMinCharsPerPage   int
	Stats                *Stats
}

// Parse reads and parses the file at path.
func (f *Files) Parse(path string) (string, map[string]any, error) {
	start := time.Now()
	defer func() {
		if f.Stats != nil {
			f.Stats.Record(time.Since(start))
		}
	}()

	p, err := ForFile(path)
	if err != nil {
		return "", nil, err
	}
	if pdf, ok := p.(*PDFParser); ok {
		pdf.FallbackPdftotext = f.PDFFallbackPdftotext
		pdf.OCRFallback = f.OCRFallback
		pdf.OCRMinCharsPerPage = f.OCRMinCharsPerPage
	}

	file, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("stat file: %w", err)
	}

	res, err := p.Parse(file, filepath.Base(path))
	if err != nil {
		return "", nil, err
	}

	if res.Metadata == nil {
		res.Metadata = map[string]any{}
	}
	res.Metadata["filesize"] = info.Size()
	res.Metadata["resourceName"] = filepath.Base(path)

	return res.Text, res.Metadata, nil
}
