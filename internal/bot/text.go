// internal/bot/text.go
package bot

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sanitizeInput заменяет все пробельные символы обычным пробелом и схлопывает повторы.
func sanitizeInput(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func fixEncoding(s string) string {
	// Проверим, является ли строка валидной UTF-8
	if utf8.ValidString(s) {
		return s
	}

	// Пробуем перекодировать из windows-1251
	fixed, err := charmap.Windows1251.NewDecoder().String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	// Если не получилось, выкидываем невалидные байты
	return strings.ToValidUTF8(s, "")
}
