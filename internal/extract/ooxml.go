package extract

import (
	"encoding/xml"
	"io"
	"strings"
)

// collectRuns walks an Office Open XML part and gathers its text runs
// (<w:t>, <a:t>) into one string per paragraph (<w:p>, <a:p>). Both the
// WordprocessingML and DrawingML vocabularies use the same local names.
func collectRuns(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	flush := func() {
		if s := current.String(); strings.TrimSpace(s) != "" {
			paragraphs = append(paragraphs, s)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		}
	}
	flush()

	return paragraphs, nil
}
