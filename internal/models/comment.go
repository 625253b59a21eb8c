package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	ArticleID uuid.UUID `db:"article_id" json:"articleId"`
	User      string    `db:"user_name"  json:"user"`
	Text      string    `db:"body"       json:"text"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	ArticleID string `json:"articleId"`
	Text      string `json:"text"`
}
