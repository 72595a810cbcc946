package parsers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractTextFromPDF extracts the text of every page, joined with newlines.
// The pdf reader panics on some malformed files, so the recover keeps the
// error-string contract intact for garbage input.
func ExtractTextFromPDF(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("%s PDF: %v", ErrorPrefix, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("%s PDF: %v", ErrorPrefix, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return fmt.Sprintf("%s PDF: %v", ErrorPrefix, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String()
}
