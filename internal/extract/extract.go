package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textkit/internal/domain"
)

// handler extracts text from a single file format.
type handler func(path string) (string, error)

// Extractor selects a format handler by file extension.
type Extractor struct {
	byExt map[string]handler
}

var _ domain.TextExtractor = (*Extractor)(nil)

// New returns an Extractor covering all supported document formats.
func New() *Extractor {
	return &Extractor{
		byExt: map[string]handler{
			".txt":  readPlain,
			".md":   readPlain,
			".log":  readPlain,
			".csv":  readPlain,
			".html": readHTML,
			".htm":  readHTML,
			".docx": readDOCX,
			".pptx": readPPTX,
			".pdf":  readPDF,
		},
	}
}

// Text extracts the textual content of the file at path.
func (e *Extractor) Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	h, ok := e.byExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return h(path)
}

func readPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}
	return string(data), nil
}
