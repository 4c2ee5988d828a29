package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first, then falls
// back to pdftotext if available. When the native text layer is too sparse
// for the page count, an OCR pass via ocrmypdf can recover scanned documents;
// text obtained that way is flagged with the ocr_parsing metadata key.
type PDFParser struct {
	FallbackPdftotext  bool
	OCRFallback        bool
	OCRMinCharsPerPage int
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*Result, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docmeta-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	meta := map[string]any{
		"Content-Type": "application/pdf",
	}

	text, pages, err := extractPDFText(tmpPath, meta)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	if pages <= 0 {
		pages = 1
	}

	if p.OCRFallback && sparseText(text, pages, p.OCRMinCharsPerPage) {
		ocrText, ocrErr := extractOCRText(tmpPath)
		if ocrErr == nil && len(strings.TrimSpace(ocrText)) > len(strings.TrimSpace(text)) {
			text = ocrText
			meta["ocr_parsing"] = true
		}
	}

	return &Result{Text: text, Metadata: meta}, nil
}

// extractPDFText pulls the text layer and document info. The docinfo fields
// land in meta under their Tika-style names.
func extractPDFText(path string, meta map[string]any) (string, int, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	meta["xmpTPg:NPages"] = numPages

	info := reader.Trailer().Key("Info")
	if info.Kind() == pdflib.Dict {
		setDocInfo(info, "Author", "Author", meta)
		setDocInfo(info, "Creator", "pdf:docinfo:creator", meta)
		setDocInfo(info, "Producer", "pdf:docinfo:producer", meta)
		setDocInfo(info, "CreationDate", "Creation-Date", meta)
	}

	var buf strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), numPages, nil
}

func setDocInfo(info pdflib.Value, pdfKey, metaKey string, meta map[string]any) {
	v := info.Key(pdfKey)
	if v.Kind() != pdflib.String {
		return
	}
	if s := strings.TrimSpace(v.RawString()); s != "" {
		meta[metaKey] = s
	}
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

// extractOCRText runs ocrmypdf and returns the sidecar text.
func extractOCRText(path string) (string, error) {
	dir, err := os.MkdirTemp("", "docmeta-ocr-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	sidecar := filepath.Join(dir, "sidecar.txt")
	out := filepath.Join(dir, "out.pdf")
	cmd := exec.Command("ocrmypdf", "--force-ocr", "--sidecar", sidecar, path, out)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ocrmypdf: %w", err)
	}

	text, err := os.ReadFile(sidecar)
	if err != nil {
		return "", fmt.Errorf("read sidecar: %w", err)
	}
	return string(text), nil
}

// sparseText reports whether the text layer is thin enough to suggest a
// scanned document.
func sparseText(text string, pages, minCharsPerPage int) bool {
	if minCharsPerPage <= 0 {
		return false
	}
	return len(strings.TrimSpace(text))/pages < minCharsPerPage
}
