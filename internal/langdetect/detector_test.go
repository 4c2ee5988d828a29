package langdetect

import (
	"errors"
	"testing"
)

func TestDetectEnglish(t *testing.T) {
	d := New()
	code, err := d.Detect("The quick brown fox jumps over the lazy dog while the sun sets behind the hills.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "en" {
		t.Errorf("expected %q, got %q", "en", code)
	}
}

func TestDetectSpanish(t *testing.T) {
	d := New()
	code, err := d.Detect("El rápido zorro marrón salta sobre el perro perezoso mientras el sol se pone detrás de las colinas.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "es" {
		t.Errorf("expected %q, got %q", "es", code)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	d := New()
	if _, err := d.Detect(""); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown for empty input, got %v", err)
	}
	if _, err := d.Detect("   \t\n"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown for whitespace input, got %v", err)
	}
}
