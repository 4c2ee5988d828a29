package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestForFileDispatch(t *testing.T) {
	tests := []struct {
		filename string
		want     any
	}{
		{"notes.txt", &TextParser{}},
		{"readme.md", &MarkdownParser{}},
		{"readme.markdown", &MarkdownParser{}},
		{"data.csv", &CSVParser{}},
		{"page.html", &HTMLParser{}},
		{"page.htm", &HTMLParser{}},
		{"report.PDF", &PDFParser{}},
		{"letter.docx", &DOCXParser{}},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tt.filename, err)
			continue
		}
		gotType := typeName(p)
		wantType := typeName(tt.want)
		if gotType != wantType {
			t.Errorf("ForFile(%q): expected %s, got %s", tt.filename, wantType, gotType)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *TextParser:
		return "TextParser"
	case *MarkdownParser:
		return "MarkdownParser"
	case *CSVParser:
		return "CSVParser"
	case *HTMLParser:
		return "HTMLParser"
	case *PDFParser:
		return "PDFParser"
	case *DOCXParser:
		return "DOCXParser"
	}
	return "unknown"
}

func TestForFileUnsupported(t *testing.T) {
	if _, err := ForFile("image.png"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("doc.pdf") {
		t.Error("expected .pdf to be supported")
	}
	if IsSupportedExtension("archive.zip") {
		t.Error("expected .zip to be unsupported")
	}
}

func TestFilesParseAddsFileMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	content := "Hello from a file.\n\nSecond paragraph."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f := &Files{}
	text, meta, err := f.Parse(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Errorf("expected text %q, got %q", content, text)
	}
	if meta["Content-Type"] != "text/plain" {
		t.Errorf("expected text/plain content type, got %v", meta["Content-Type"])
	}
	size, ok := meta["filesize"].(int64)
	if !ok || size != int64(len(content)) {
		t.Errorf("expected filesize=%d, got %v", len(content), meta["filesize"])
	}
	if meta["resourceName"] != "sample.txt" {
		t.Errorf("expected resourceName=sample.txt, got %v", meta["resourceName"])
	}
}

func TestFilesParseMissingFile(t *testing.T) {
	f := &Files{}
	if _, _, err := f.Parse(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilesParseRecordsStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timed.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	stats := NewStats(time.Hour)
	f := &Files{Stats: stats}
	if _, _, err := f.Parse(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := stats.Snapshot(); snap.Count != 1 {
		t.Errorf("expected 1 recorded sample, got %d", snap.Count)
	}
}
