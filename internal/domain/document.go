package domain

// UploadedDocument carries one uploaded file through the analysis pipeline.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

// TextExtractor decodes an uploaded document's raw bytes into plain text.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// TruncateText returns the first max characters of s. Truncation is by
// character, not by word or sentence boundary; cutting mid-word is accepted
// behavior. Empty input yields empty output.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
