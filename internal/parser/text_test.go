package parser

import (
	"strings"
	"testing"
)

func TestTextParserPreservesLines(t *testing.T) {
	input := "First line.\nSecond line.\n\nNew paragraph."
	p := &TextParser{}
	res, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != input {
		t.Errorf("expected text %q, got %q", input, res.Text)
	}
	if res.Metadata["Content-Type"] != "text/plain" {
		t.Errorf("expected text/plain, got %v", res.Metadata["Content-Type"])
	}
}

func TestTextParserNormalizesCRLF(t *testing.T) {
	input := "line one\r\nline two\r\n"
	p := &TextParser{}
	res, err := p.Parse(strings.NewReader(input), "dos.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "line one\nline two"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}
}

func TestTextParserEmptyInput(t *testing.T) {
	p := &TextParser{}
	res, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" {
		t.Errorf("expected empty text, got %q", res.Text)
	}
}
