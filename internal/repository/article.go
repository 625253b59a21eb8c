package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"seoblog/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не существует (или уже удалена).
	ErrNotFound = errors.New("запись не найдена")
	// ErrSlugTaken — нарушение уникальности slug при вставке.
	ErrSlugTaken = errors.New("slug уже занят")
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetAll(ctx context.Context, owner string) ([]*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, slug, meta, content, og, category, read_time, owner, created_at, updated_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	metaJSON, _ := json.Marshal(a.Meta)
	ogJSON, _ := json.Marshal(a.OG)

	const q = `
		INSERT INTO articles (title, slug, meta, content, og, category, read_time, owner)
		VALUES ($1,$2,$3::jsonb,$4,$5::jsonb,$6,$7,$8)
		RETURNING ` + articleColumns

	out, err := scanArticle(r.db.QueryRow(ctx, q,
		a.Title,
		a.Slug,
		metaJSON,
		a.Content,
		ogJSON,
		a.Category,
		a.ReadTime,
		nullable(a.Owner),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 — unique_violation: единственный уникальный индекс у articles — slug
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, a.Slug)
		}
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) GetAll(ctx context.Context, owner string) ([]*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles`
	args := []interface{}{}
	if strings.TrimSpace(owner) != "" {
		q += ` WHERE owner = $1`
		args = append(args, owner)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id=$1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug=$1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// Delete удаляет статью; повторное удаление того же id отдаёт ErrNotFound.
func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM articles WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	var metaRaw, ogRaw []byte
	var owner *string
	if err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &metaRaw, &a.Content, &ogRaw,
		&a.Category, &a.ReadTime, &owner, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(metaRaw, &a.Meta)
	_ = json.Unmarshal(ogRaw, &a.OG)
	if owner != nil {
		a.Owner = *owner
	}
	return &a, nil
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
