package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"seoblog/internal/models"
)

var (
	// ErrNoJSONFound — в ответе провайдера нет ни одного сбалансированного
	// JSON-объекта.
	ErrNoJSONFound = errors.New("в ответе модели не найден JSON-объект")
	// ErrMissingFields — обязательное поле статьи отсутствует после декодирования.
	ErrMissingFields = errors.New("в сгенерированной статье нет обязательного поля")
)

// extractJSONSpan находит первый сбалансированный `{...}` в сыром тексте.
// Модель может приписать прозу до и после JSON — контракт с ней неформальный,
// поэтому вырезаем объект сами, учитывая строки и экранирование.
func extractJSONSpan(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// ExtractArticle превращает сырой ответ провайдера в структурированную статью.
// Непрошедшие декодирование данные дальше этой границы не проходят.
func ExtractArticle(raw string) (*models.GeneratedArticle, error) {
	span, ok := extractJSONSpan(raw)
	if !ok {
		return nil, ErrNoJSONFound
	}

	var a models.GeneratedArticle
	if err := json.Unmarshal([]byte(span), &a); err != nil {
		return nil, fmt.Errorf("некорректный JSON в ответе модели: %w", err)
	}

	if err := validateGenerated(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func validateGenerated(a *models.GeneratedArticle) error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return fmt.Errorf("%w: title", ErrMissingFields)
	case strings.TrimSpace(a.Meta.Description) == "":
		return fmt.Errorf("%w: meta.description", ErrMissingFields)
	case len(a.Meta.Keywords) == 0:
		return fmt.Errorf("%w: meta.keywords", ErrMissingFields)
	case strings.TrimSpace(a.Content) == "":
		return fmt.Errorf("%w: content", ErrMissingFields)
	case strings.TrimSpace(a.OG.Title) == "":
		return fmt.Errorf("%w: og.title", ErrMissingFields)
	case strings.TrimSpace(a.OG.Description) == "":
		return fmt.Errorf("%w: og.description", ErrMissingFields)
	}
	return nil
}
