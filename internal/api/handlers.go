package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docmeta/internal/document"
	"github.com/dgallion1/docmeta/internal/parser"
)

// metadataResponse is the normalized record for one uploaded file. The
// Metadata field marshals with its keys in the fixed output order.
type metadataResponse struct {
	Filename      string          `json:"filename"`
	Words         int             `json:"words"`
	Chars         int             `json:"chars"`
	MetadataError bool            `json:"metadata_error,omitempty"`
	Metadata      document.Record `json:"metadata"`
}

// handleMetadata accepts a multipart upload and returns the normalized
// metadata record. The optional join query flag merges all text lines into a
// single unit instead of paragraph grouping.
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !parser.IsSupportedExtension(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type: %s", filepath.Ext(header.Filename)))
		return
	}

	// The parser dispatches on extension, so the temp file keeps it.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	tmp, err := os.CreateTemp("", "docmeta-upload-*"+ext)
	if err != nil {
		s.log.Error("create temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.log.Error("write temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	tmp.Close()

	join := r.URL.Query().Get("join") == "true"
	doc := s.normalizer.Normalize(tmpPath, join)

	writeJSON(w, http.StatusOK, metadataResponse{
		Filename:      header.Filename,
		Words:         doc.Words,
		Chars:         doc.Chars,
		MetadataError: doc.MetadataError,
		Metadata:      doc.Record,
	})
}

func (s *Server) handleParseStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
