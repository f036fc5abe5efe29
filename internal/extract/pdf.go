package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"textkit/internal/domain"
)

// readPDF flattens every page of a PDF into plain text. The pdf reader
// panics on malformed input, so failures are recovered into an error.
func readPDF(path string) (_ string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.FileAccessError{Path: path, Err: fmt.Errorf("parse pdf: %v", r)}
		}
	}()

	// Open can return the file handle alongside an error.
	f, r, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}

	text, err := r.GetPlainText()
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}
	return buf.String(), nil
}
