// Package parsers turns uploaded resume files into plain text for the
// extractor. The functions never return an error value: on failure they
// return a string describing the error, and the extraction core runs over
// whatever string it receives. Callers that need to surface failures can
// check the "Error extracting" prefix.
package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrorPrefix starts every failure string produced by this package.
const ErrorPrefix = "Error extracting"

// IsErrorText reports whether text is a failure string rather than
// extracted content.
func IsErrorText(text string) bool {
	return strings.HasPrefix(text, ErrorPrefix)
}

// ExtractTextFromTXT decodes a plain-text upload.
func ExtractTextFromTXT(data []byte) string {
	if !utf8.Valid(data) {
		return fmt.Sprintf("%s TXT: file is not valid UTF-8", ErrorPrefix)
	}
	return string(data)
}

// ExtractTextFromFile dispatches on the file extension.
func ExtractTextFromFile(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ExtractTextFromPDF(data)
	case ".docx":
		return ExtractTextFromDOCX(data)
	case ".txt":
		return ExtractTextFromTXT(data)
	default:
		return fmt.Sprintf("%s text: unsupported file format %q", ErrorPrefix, filepath.Ext(filename))
	}
}
