package models

import (
	"time"

	"github.com/google/uuid"
)

// Meta — SEO-метаданные статьи.
type Meta struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// OpenGraph — OG-разметка для соцсетей.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type Article struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Slug      string    `db:"slug"       json:"slug"`
	Meta      Meta      `db:"-"          json:"meta"`
	Content   string    `db:"content"    json:"content"`
	OG        OpenGraph `db:"-"          json:"og"`
	Category  string    `db:"category"   json:"category,omitempty"`
	ReadTime  string    `db:"read_time"  json:"readTime,omitempty"`
	Owner     string    `db:"owner"      json:"owner,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// GeneratedArticle — то, что вернул провайдер генерации (до нормализации
// slug и до присвоения владельца/идентификатора).
type GeneratedArticle struct {
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Meta     Meta      `json:"meta"`
	Content  string    `json:"content"`
	OG       OpenGraph `json:"og"`
	Category string    `json:"category"`
	ReadTime string    `json:"readTime"`
}

// swagger:model GenerateArticleRequest
type GenerateArticleRequest struct {
	Topic string `json:"topic" example:"Постквантовая криптография для веб-разработчиков"`
}
