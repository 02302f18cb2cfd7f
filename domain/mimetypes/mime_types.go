package mimetypes

import "mime"

type MIME string

const (
	Unknown                MIME = "unknown"
	TextPlain              MIME = "text/plain"
	TextCSV                MIME = "text/csv"
	TextTabSeparatedValues MIME = "text/tab-separated-values"
)

// Matches compares a detected media type, parameters ignored, with the expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// ToMIME strips the parameters of a detected media type.
func ToMIME(detected string) MIME {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// Delimiter returns the field separator to use for a tabular text type.
func Delimiter(m MIME) rune {
	if m == TextTabSeparatedValues {
		return '\t'
	}
	return ','
}
