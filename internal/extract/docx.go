package extract

import (
	"archive/zip"
	"errors"
	"strings"

	"textkit/internal/domain"
)

// readDOCX pulls the text runs out of a Word document's main part.
func readDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", &domain.FileAccessError{Path: path, Err: err}
		}
		paragraphs, err := collectRuns(rc)
		rc.Close()
		if err != nil {
			return "", &domain.FileAccessError{Path: path, Err: err}
		}
		return strings.Join(paragraphs, "\n"), nil
	}

	return "", &domain.FileAccessError{Path: path, Err: errors.New("word/document.xml missing")}
}
