package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"seoblog/internal/logger"
	"seoblog/internal/models"
	"seoblog/internal/reqctx"
	"seoblog/internal/services"
	helpers "seoblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create
// @Summary      Оставить комментарий
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body   models.CreateCommentRequest  true  "Комментарий"
// @Success      201   {object}  models.Comment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := reqctx.GetUserEmail(r.Context())
	if !ok || email == "" {
		helpers.Error(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}
	// отображаемое имя, с фолбэком на email
	user := email
	if name, ok := reqctx.GetUserName(r.Context()); ok && name != "" {
		user = name
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании комментария", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	comment, err := h.svc.Create(r.Context(), user, req.ArticleID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrCommentFields) {
			helpers.Error(w, http.StatusBadRequest, "Не заполнены обязательные поля")
			return
		}
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось сохранить комментарий", err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, comment)
}

// List
// @Summary      Комментарии статьи
// @Description  Новые первыми; синтаксически некорректный articleId даёт пустой список
// @Tags         comments
// @Produce      json
// @Param        articleId  query  string  true  "UUID статьи"
// @Success      200  {array}  models.Comment
// @Failure      400  {object}  map[string]string
// @Router       /api/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	articleID := r.URL.Query().Get("articleId")
	if articleID == "" {
		helpers.Error(w, http.StatusBadRequest, "Не указан articleId")
		return
	}

	list, err := h.svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось получить комментарии", err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}
