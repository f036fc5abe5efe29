// Package extract reads plain text out of document files.
//
// # Overview
//
// An Extractor dispatches on the (case-insensitive) file extension:
//   - .txt, .md, .log, .csv are read verbatim.
//   - .html and .htm have their markup tags stripped.
//   - .docx and .pptx are unzipped and their XML text runs collected.
//   - .pdf pages are flattened via the pdf reader.
//
// # Errors
//
// Unknown extensions return an error wrapping domain.ErrUnsupportedFormat.
// Missing, unreadable or malformed files return *domain.FileAccessError.
package extract
