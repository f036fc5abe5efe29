package extract

import "regexp"

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// readHTML loads an HTML file and replaces markup tags with spaces, leaving
// only the document's visible text.
func readHTML(path string) (string, error) {
	raw, err := readPlain(path)
	if err != nil {
		return "", err
	}
	return tagPattern.ReplaceAllString(raw, " "), nil
}
