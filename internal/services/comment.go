package services

import (
	"context"
	"errors"
	"strings"

	"seoblog/internal/logger"
	"seoblog/internal/models"
	"seoblog/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCommentFields — нет articleId или текста комментария.
var ErrCommentFields = errors.New("articleId и text обязательны")

type CommentService interface {
	Create(ctx context.Context, user, articleID, text string) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
}

type commentService struct {
	repo repository.CommentRepo
}

func NewCommentService(repo repository.CommentRepo) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, user, articleID, text string) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	if strings.TrimSpace(articleID) == "" || strings.TrimSpace(text) == "" {
		log.Warn("Валидация комментария не пройдена",
			zap.Bool("has_article_id", strings.TrimSpace(articleID) != ""),
		)
		return nil, ErrCommentFields
	}

	id, err := uuid.Parse(articleID)
	if err != nil {
		log.Warn("Некорректный articleId при создании комментария", zap.String("article_id", articleID))
		return nil, ErrCommentFields
	}

	created, err := s.repo.Create(ctx, &models.Comment{
		ArticleID: id,
		User:      user,
		Text:      strings.TrimSpace(text),
	})
	if err != nil {
		log.Error("Ошибка создания комментария (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий создан",
		zap.String("id", created.ID.String()),
		zap.String("article_id", created.ArticleID.String()),
	)
	return created, nil
}

// ListByArticle отдаёт комментарии статьи, новые первыми. Синтаксически
// некорректный идентификатор — это не ошибка, а пустой список: кривой ввод
// клиента должен деградировать тихо.
func (s *commentService) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	log := logger.WithCtx(ctx)

	id, err := uuid.Parse(strings.TrimSpace(articleID))
	if err != nil {
		log.Warn("Некорректный articleId, отдаём пустой список", zap.String("article_id", articleID))
		return []*models.Comment{}, nil
	}

	list, err := s.repo.ListByArticle(ctx, id)
	if err != nil {
		log.Error("Ошибка получения комментариев (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Комментарии получены", zap.String("article_id", id.String()), zap.Int("count", len(list)))
	return list, nil
}
