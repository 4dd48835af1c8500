package twmerge

import "strings"

// Join concatenates class strings with a single space, preserving call order.
// Accepted values are string and []string; empty strings, nil, booleans and
// any other type are skipped.
func Join(values ...any) string {
	var b strings.Builder
	for _, v := range values {
		switch v := v.(type) {
		case string:
			writeClass(&b, v)
		case []string:
			for _, s := range v {
				writeClass(&b, s)
			}
		}
	}
	return b.String()
}

func writeClass(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
