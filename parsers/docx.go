package parsers

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
)

// ExtractTextFromDOCX extracts paragraph text from a DOCX upload, one
// paragraph per line.
func ExtractTextFromDOCX(data []byte) string {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("%s DOCX: %v", ErrorPrefix, err)
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
