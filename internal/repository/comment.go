package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"seoblog/internal/models"

	"github.com/google/uuid"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*models.Comment, error)
}

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const q = `
		INSERT INTO comments (article_id, user_name, body)
		VALUES ($1,$2,$3)
		RETURNING id, article_id, user_name, body, created_at
	`
	var out models.Comment
	err := r.db.QueryRow(ctx, q, c.ArticleID, c.User, c.Text).Scan(
		&out.ID, &out.ArticleID, &out.User, &out.Text, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*models.Comment, error) {
	const q = `
		SELECT id, article_id, user_name, body, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.User, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
