package extract

import (
	"archive/zip"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"textkit/internal/domain"
)

var slidePattern = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// readPPTX concatenates the text runs of every slide in deck order.
func readPPTX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Err: err}
	}
	defer zr.Close()

	var slides []*zip.File
	for _, f := range zr.File {
		if slidePattern.MatchString(f.Name) {
			slides = append(slides, f)
		}
	}
	// Archive order is arbitrary; deck order is the numeric suffix.
	sort.Slice(slides, func(i, j int) bool {
		return slideIndex(slides[i].Name) < slideIndex(slides[j].Name)
	})

	var parts []string
	for _, f := range slides {
		rc, err := f.Open()
		if err != nil {
			return "", &domain.FileAccessError{Path: path, Err: err}
		}
		paragraphs, err := collectRuns(rc)
		rc.Close()
		if err != nil {
			return "", &domain.FileAccessError{Path: path, Err: err}
		}
		parts = append(parts, paragraphs...)
	}

	return strings.Join(parts, "\n"), nil
}

func slideIndex(name string) int {
	m := slidePattern.FindStringSubmatch(name)
	if len(m) != 2 {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
