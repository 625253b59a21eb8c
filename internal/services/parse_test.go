package services

import (
	"errors"
	"testing"
)

const validArticleJSON = `{
	"title": "Тестовая статья",
	"slug": "testovaya-statya",
	"meta": {"description": "Описание", "keywords": ["go", "seo"]},
	"content": "<h2>Раздел</h2><p>Текст</p>",
	"og": {"title": "OG заголовок", "description": "OG описание", "image": "https://example.com/img.png"},
	"category": "tech",
	"readTime": "5 min read"
}`

func TestExtractArticle_LeadingProse(t *testing.T) {
	raw := "Sure! Here you go:\n" + validArticleJSON + "\nHope that helps!"

	a, err := ExtractArticle(raw)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if a.Title != "Тестовая статья" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Slug != "testovaya-statya" {
		t.Errorf("slug = %q", a.Slug)
	}
	if len(a.Meta.Keywords) != 2 {
		t.Errorf("keywords = %v", a.Meta.Keywords)
	}
	if a.OG.Image != "https://example.com/img.png" {
		t.Errorf("og.image = %q", a.OG.Image)
	}
}

func TestExtractArticle_NoJSON(t *testing.T) {
	_, err := ExtractArticle("Извините, не могу написать статью на эту тему.")
	if !errors.Is(err, ErrNoJSONFound) {
		t.Fatalf("ожидали ErrNoJSONFound, получили %v", err)
	}
}

func TestExtractArticle_UnbalancedBraces(t *testing.T) {
	_, err := ExtractArticle(`вот начало объекта: {"title": "обрыв`)
	if !errors.Is(err, ErrNoJSONFound) {
		t.Fatalf("ожидали ErrNoJSONFound для незакрытого объекта, получили %v", err)
	}
}

func TestExtractArticle_MalformedJSON(t *testing.T) {
	_, err := ExtractArticle(`{"title": "x", "meta": нет}`)
	if err == nil {
		t.Fatal("ожидали ошибку декодирования")
	}
	if errors.Is(err, ErrNoJSONFound) || errors.Is(err, ErrMissingFields) {
		t.Fatalf("ожидали именно ошибку декодирования, получили %v", err)
	}
}

func TestExtractArticle_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"нет title", `{"meta":{"description":"d","keywords":["k"]},"content":"c","og":{"title":"t","description":"d"}}`},
		{"нет meta.description", `{"title":"t","meta":{"keywords":["k"]},"content":"c","og":{"title":"t","description":"d"}}`},
		{"нет meta.keywords", `{"title":"t","meta":{"description":"d"},"content":"c","og":{"title":"t","description":"d"}}`},
		{"нет content", `{"title":"t","meta":{"description":"d","keywords":["k"]},"og":{"title":"t","description":"d"}}`},
		{"нет og.title", `{"title":"t","meta":{"description":"d","keywords":["k"]},"content":"c","og":{"description":"d"}}`},
		{"нет og.description", `{"title":"t","meta":{"description":"d","keywords":["k"]},"content":"c","og":{"title":"t"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractArticle(tc.raw)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("ожидали ErrMissingFields, получили %v", err)
			}
		})
	}
}

func TestExtractJSONSpan_BracesInsideStrings(t *testing.T) {
	raw := `prefix {"title": "скобки { и } внутри строки", "x": "a\"b"} suffix`
	span, ok := extractJSONSpan(raw)
	if !ok {
		t.Fatal("span не найден")
	}
	want := `{"title": "скобки { и } внутри строки", "x": "a\"b"}`
	if span != want {
		t.Fatalf("span = %q, ожидалось %q", span, want)
	}
}

func TestExtractJSONSpan_TakesFirstObject(t *testing.T) {
	raw := `{"a":1} и ещё один {"b":2}`
	span, ok := extractJSONSpan(raw)
	if !ok || span != `{"a":1}` {
		t.Fatalf("span = %q, ok = %v", span, ok)
	}
}
