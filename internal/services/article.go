package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seoblog/internal/logger"
	"seoblog/internal/models"
	"seoblog/internal/repository"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var (
	// ErrEmptyTopic — тема пустая после обрезки пробелов; до провайдера
	// генерации такой запрос не доходит.
	ErrEmptyTopic = errors.New("тема статьи не задана")
	// ErrGeneration — сбой провайдера генерации (транспорт или сам API).
	ErrGeneration = errors.New("не удалось сгенерировать статью")
	// ErrParse — ответ провайдера не удалось превратить в структурированную статью.
	ErrParse = errors.New("не удалось разобрать ответ модели")
)

type ArticleService interface {
	GenerateAndCreate(ctx context.Context, owner, topic string) (*models.Article, error)
	GetAll(ctx context.Context, owner string) ([]*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleService struct {
	repo      repository.ArticleRepo
	generator Generator
	policy    *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo, generator Generator) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, generator: generator, policy: p}
}

// GenerateAndCreate — конвейер создания статьи: валидация темы → генерация →
// разбор → нормализация slug → сохранение. Строго последовательный, без
// ретраев; единственный устойчивый побочный эффект — запись в БД, и она
// происходит только после успешных генерации и разбора.
func (s *articleService) GenerateAndCreate(ctx context.Context, owner, topic string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		log.Warn("Валидация не пройдена: пустая тема")
		return nil, ErrEmptyTopic
	}

	log.Info("Генерация статьи", zap.String("topic", topic), zap.String("owner", owner))

	raw, err := s.generator.Generate(ctx, topic)
	if err != nil {
		log.Error("Ошибка провайдера генерации", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	gen, err := ExtractArticle(raw)
	if err != nil {
		log.Error("Ответ модели не разобран", zap.Error(err), zap.Int("raw_len", len(raw)))
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	slug := Slugify(gen.Slug, gen.Title)
	if slug == "" {
		log.Error("Из заголовка не получился непустой slug", zap.String("title", gen.Title))
		return nil, fmt.Errorf("%w: пустой slug", ErrParse)
	}

	a := &models.Article{
		Title:    strings.TrimSpace(gen.Title),
		Slug:     slug,
		Meta:     gen.Meta,
		Content:  s.policy.Sanitize(gen.Content),
		OG:       gen.OG,
		Category: gen.Category,
		ReadTime: gen.ReadTime,
		Owner:    owner,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка сохранения статьи (repo)", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	log.Info("Статья создана",
		zap.String("id", created.ID.String()),
		zap.String("slug", created.Slug),
		zap.String("owner", created.Owner),
	)
	return created, nil
}

func (s *articleService) GetAll(ctx context.Context, owner string) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка статей", zap.String("owner", owner))

	list, err := s.repo.GetAll(ctx, owner)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение статьи по ID", zap.String("id", id.String()))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение статьи по slug", zap.String("slug", slug))

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn("Статья не найдена по slug (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Статья для удаления не найдена", zap.String("id", id.String()))
		} else {
			log.Error("Ошибка удаления статьи (repo)", zap.String("id", id.String()), zap.Error(err))
		}
		return err
	}

	log.Info("Статья удалена", zap.String("id", id.String()))
	return nil
}
