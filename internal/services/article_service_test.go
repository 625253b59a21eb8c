package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"seoblog/internal/models"
	"seoblog/internal/repository"

	"github.com/google/uuid"
)

// Мок-репозиторий: хранит всё в памяти и воспроизводит контракт хранилища —
// уникальный slug, выдача новых первыми.
type mockArticleRepo struct {
	mu       sync.Mutex
	articles []*models.Article
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.articles {
		if ex.Slug == a.Slug {
			return nil, fmt.Errorf("%w: %s", repository.ErrSlugTaken, a.Slug)
		}
	}
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().Add(time.Duration(len(m.articles)) * time.Millisecond)
	stored.UpdatedAt = stored.CreatedAt
	m.articles = append(m.articles, &stored)
	return &stored, nil
}

func (m *mockArticleRepo) GetAll(_ context.Context, owner string) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Article{}
	for _, a := range m.articles {
		if owner == "" || a.Owner == owner {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockArticleRepo) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.articles {
		if a.ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Мок-генератор со счётчиком вызовов.
type mockGenerator struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (m *mockGenerator) Generate(_ context.Context, topic string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func genReply(title, slug string) string {
	return "Of course! Here is the article:\n" + fmt.Sprintf(`{
		"title": %q,
		"slug": %q,
		"meta": {"description": "desc", "keywords": ["k1", "k2"]},
		"content": "<h2>Intro</h2><p>Body</p><script>alert(1)</script>",
		"og": {"title": "og title", "description": "og desc"},
		"category": "tech",
		"readTime": "4 min read"
	}`, title, slug)
}

func TestGenerateAndCreate_Success(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("Большой Гид по Go", "")}
	svc := NewArticleService(repo, gen)

	a, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "go generics")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	if a.Slug != "bolshoy-gid-po-go" {
		t.Errorf("slug = %q", a.Slug)
	}
	for _, r := range a.Slug {
		ok := r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !ok {
			t.Errorf("в slug недопустимый символ %q", r)
		}
	}
	if a.Owner != "user@example.com" {
		t.Errorf("owner = %q", a.Owner)
	}
	if strings.Contains(a.Content, "<script>") {
		t.Error("контент не просанитизирован")
	}
	if !strings.Contains(a.Content, "<h2>Intro</h2>") {
		t.Errorf("легитимная разметка потеряна: %q", a.Content)
	}
	if a.ID == uuid.Nil {
		t.Error("хранилище не присвоило id")
	}
}

func TestGenerateAndCreate_PrefersModelSlug(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("Some Title", "Custom Slug From Model")}
	svc := NewArticleService(repo, gen)

	a, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "topic")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if a.Slug != "custom-slug-from-model" {
		t.Errorf("slug = %q, ожидали нормализованный slug модели", a.Slug)
	}
}

func TestGenerateAndCreate_EmptyTopic(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("X", "")}
	svc := NewArticleService(repo, gen)

	_, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "   ")
	if !errors.Is(err, ErrEmptyTopic) {
		t.Fatalf("ожидали ErrEmptyTopic, получили %v", err)
	}
	if gen.callCount() != 0 {
		t.Fatalf("провайдер генерации не должен вызываться для пустой темы, вызовов: %d", gen.callCount())
	}
	if len(repo.articles) != 0 {
		t.Fatal("ничего не должно сохраняться")
	}
}

func TestGenerateAndCreate_GenerationFailure(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{err: errors.New("upstream 502")}
	svc := NewArticleService(repo, gen)

	_, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "topic")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("ожидали ErrGeneration, получили %v", err)
	}
	if len(repo.articles) != 0 {
		t.Fatal("при сбое генерации ничего не должно сохраняться")
	}
}

func TestGenerateAndCreate_ParseFailure(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: "Извините, JSON не будет."}
	svc := NewArticleService(repo, gen)

	_, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "topic")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("ожидали ErrParse, получили %v", err)
	}
	if len(repo.articles) != 0 {
		t.Fatal("при сбое разбора ничего не должно сохраняться")
	}
}

func TestGenerateAndCreate_DuplicateSlug(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("Same Title", "same-slug")}
	svc := NewArticleService(repo, gen)

	if _, err := svc.GenerateAndCreate(context.Background(), "a@example.com", "topic"); err != nil {
		t.Fatalf("первое создание должно пройти: %v", err)
	}
	_, err := svc.GenerateAndCreate(context.Background(), "b@example.com", "topic")
	if !errors.Is(err, repository.ErrSlugTaken) {
		t.Fatalf("ожидали ErrSlugTaken, получили %v", err)
	}
}

func TestGenerateAndCreate_ConcurrentSameSlug(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("Race Title", "race-slug")}
	svc := NewArticleService(repo, gen)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.GenerateAndCreate(context.Background(), "user@example.com", "topic")
		}(i)
	}
	wg.Wait()

	var okCount, dupCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, repository.ErrSlugTaken):
			dupCount++
		default:
			t.Fatalf("неожиданная ошибка: %v", err)
		}
	}
	if okCount != 1 || dupCount != 1 {
		t.Fatalf("ожидали ровно одну успешную запись и один ErrSlugTaken, получили ok=%d dup=%d", okCount, dupCount)
	}
}

func TestGetAll_NewestFirst(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := NewArticleService(repo, &mockGenerator{})

	for i, slug := range []string{"first", "second", "third"} {
		_, err := repo.Create(context.Background(), &models.Article{
			Title: fmt.Sprintf("Статья %d", i), Slug: slug,
			Meta:    models.Meta{Description: "d", Keywords: []string{"k"}},
			Content: "<p>x</p>",
			OG:      models.OpenGraph{Title: "t", Description: "d"},
		})
		if err != nil {
			t.Fatalf("подготовка данных: %v", err)
		}
	}

	list, err := svc.GetAll(context.Background(), "")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Slug != "third" || list[2].Slug != "first" {
		t.Fatalf("нарушен порядок: %s, %s, %s", list[0].Slug, list[1].Slug, list[2].Slug)
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatal("список не отсортирован по createdAt убыванию")
		}
	}
}

func TestGetAll_JustCreatedComesFirst(t *testing.T) {
	repo := &mockArticleRepo{}
	gen := &mockGenerator{reply: genReply("Свежая статья", "fresh-article")}
	svc := NewArticleService(repo, gen)

	if _, err := repo.Create(context.Background(), &models.Article{
		Title: "Старая", Slug: "old-article",
		Meta:    models.Meta{Description: "d", Keywords: []string{"k"}},
		Content: "<p>x</p>",
		OG:      models.OpenGraph{Title: "t", Description: "d"},
	}); err != nil {
		t.Fatalf("подготовка данных: %v", err)
	}

	if _, err := svc.GenerateAndCreate(context.Background(), "user@example.com", "topic"); err != nil {
		t.Fatalf("создание: %v", err)
	}

	list, err := svc.GetAll(context.Background(), "")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if list[0].Slug != "fresh-article" {
		t.Fatalf("только что созданная статья должна быть первой, а первая — %s", list[0].Slug)
	}
}

func TestGetAll_OwnerFilter(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := NewArticleService(repo, &mockGenerator{})

	seed := []struct{ slug, owner string }{
		{"mine-1", "me@example.com"},
		{"theirs", "other@example.com"},
		{"mine-2", "me@example.com"},
	}
	for _, s := range seed {
		if _, err := repo.Create(context.Background(), &models.Article{
			Title: s.slug, Slug: s.slug, Owner: s.owner,
			Meta:    models.Meta{Description: "d", Keywords: []string{"k"}},
			Content: "<p>x</p>",
			OG:      models.OpenGraph{Title: "t", Description: "d"},
		}); err != nil {
			t.Fatalf("подготовка данных: %v", err)
		}
	}

	list, err := svc.GetAll(context.Background(), "me@example.com")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ожидали 2 статьи владельца, получили %d", len(list))
	}
	for _, a := range list {
		if a.Owner != "me@example.com" {
			t.Fatalf("чужая статья в выдаче: %s", a.Slug)
		}
	}
}

func TestDelete_Idempotence(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := NewArticleService(repo, &mockGenerator{})

	created, err := repo.Create(context.Background(), &models.Article{
		Title: "Удаляемая", Slug: "to-delete",
		Meta:    models.Meta{Description: "d", Keywords: []string{"k"}},
		Content: "<p>x</p>",
		OG:      models.OpenGraph{Title: "t", Description: "d"},
	})
	if err != nil {
		t.Fatalf("подготовка данных: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("первое удаление должно пройти: %v", err)
	}
	err = svc.Delete(context.Background(), created.ID)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("второе удаление должно отдавать ErrNotFound, получили %v", err)
	}
}
