package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// toPascalCase turns a column name into an exported identifier: "user_id" -> "UserID",
// "createdAt" -> "CreatedAt", "2fa code" -> "C2faCode".
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, part := range parts {
		if strings.EqualFold(part, "id") {
			b.WriteString("ID")
			continue
		}
		b.WriteString(capitalize(part))
	}

	out := b.String()
	if out == "" {
		return "Field"
	}
	if first, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(first) {
		out = "C" + out
	}
	return out
}
