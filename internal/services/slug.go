package services

import "strings"

// translit — упрощённая транслитерация кириллицы, чтобы русские заголовки
// давали читаемые slug, а не пустую строку.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Slugify приводит текст к URL-безопасному виду: нижний регистр, только
// ASCII-буквы и цифры, пробелы и пунктуация схлопываются в одиночные дефисы.
// Детерминирована: уникальность обеспечивает не она, а индекс в БД.
func Slugify(candidate, fallback string) string {
	src := strings.TrimSpace(candidate)
	if src == "" {
		src = strings.TrimSpace(fallback)
	}
	src = strings.ToLower(src)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range src {
		var chunk string
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			chunk = string(r)
		default:
			if t, ok := translit[r]; ok {
				if t == "" {
					// немые знаки (ъ, ь) просто выпадают
					continue
				}
				chunk = t
			}
		}
		if chunk == "" {
			// всё прочее — разделитель
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteString(chunk)
	}
	return b.String()
}
