package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/docmeta/internal/config"
	"github.com/dgallion1/docmeta/internal/document"
	"github.com/dgallion1/docmeta/internal/langdetect"
	"github.com/dgallion1/docmeta/internal/parser"
)

func main() {
	join := flag.Bool("join", false, "merge all text lines into a single unit")
	asJSON := flag.Bool("json", false, "print one JSON object per file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: docmeta [-join] [-json] file...")
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := config.Load()
	detector := langdetect.New()
	files := &parser.Files{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
		OCRFallback:          cfg.OCRFallback,
		OCRMinCharsPerPage:   cfg.OCRMinCharsPerPage,
	}
	norm := document.NewNormalizer(files, detector, log)

	enc := json.NewEncoder(os.Stdout)
	for _, path := range flag.Args() {
		doc := norm.Normalize(path, *join)
		if *asJSON {
			enc.Encode(struct {
				Path     string          `json:"path"`
				Words    int             `json:"words"`
				Chars    int             `json:"chars"`
				Metadata document.Record `json:"metadata"`
			}{doc.Path, doc.Words, doc.Chars, doc.Record})
			continue
		}

		fmt.Println(doc.Path)
		for _, f := range doc.Record.Fields() {
			if f.Value == nil {
				fmt.Printf("  %-18s -\n", f.Key)
				continue
			}
			fmt.Printf("  %-18s %v\n", f.Key, f.Value)
		}
		fmt.Printf("  %-18s %d\n", "words", doc.Words)
		fmt.Printf("  %-18s %d\n", "chars", doc.Chars)
	}
}
