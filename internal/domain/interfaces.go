package domain

// TextExtractor loads the textual content of a document for analysis.
type TextExtractor interface {
	// Text returns the extracted text of the file at path. It reports
	// *FileAccessError when the file cannot be opened, read, or decoded,
	// and ErrUnsupportedFormat for file types it has no handler for.
	Text(path string) (string, error)
}
