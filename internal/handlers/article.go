package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"seoblog/internal/logger"
	"seoblog/internal/models"
	"seoblog/internal/repository"
	"seoblog/internal/reqctx"
	"seoblog/internal/services"
	helpers "seoblog/internal/utils/helpers"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Generate
// @Summary      Сгенерировать и опубликовать статью
// @Description  Принимает тему, ходит к провайдеру генерации и сохраняет готовую статью
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body   models.GenerateArticleRequest  true  "Тема статьи"
// @Success      201   {object}  models.Article
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/articles [post]
func (h *ArticleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	owner, ok := reqctx.GetUserEmail(r.Context())
	if !ok || owner == "" {
		helpers.Error(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}

	var req models.GenerateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при генерации статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.svc.GenerateAndCreate(r.Context(), owner, req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTopic):
			helpers.Error(w, http.StatusBadRequest, "Тема обязательна")
		case errors.Is(err, services.ErrGeneration):
			helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось сгенерировать статью", err.Error())
		case errors.Is(err, services.ErrParse):
			helpers.ErrorDetails(w, http.StatusInternalServerError, "Модель не вернула корректные данные", err.Error())
		case errors.Is(err, repository.ErrSlugTaken):
			helpers.ErrorDetails(w, http.StatusInternalServerError, "Статья с таким slug уже существует", err.Error())
		default:
			helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось сохранить статью", err.Error())
		}
		return
	}

	helpers.JSON(w, http.StatusCreated, article)
}

// GetAll
// @Summary      Список статей
// @Description  Новые первыми; авторизованный пользователь без параметра owner видит свои
// @Tags         articles
// @Produce      json
// @Param        owner  query  string  false  "Фильтр по владельцу"
// @Success      200  {array}  models.Article
// @Failure      500  {object}  map[string]string
// @Router       /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		// как в исходном поведении: своя лента для вошедшего пользователя
		if email, ok := reqctx.GetUserEmail(r.Context()); ok {
			owner = email
		}
	}

	list, err := h.svc.GetAll(r.Context(), owner)
	if err != nil {
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось получить статьи", err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary      Статья по ID
// @Tags         articles
// @Produce      json
// @Param        id  path  string  true  "UUID статьи"
// @Success      200  {object}  models.Article
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный идентификатор статьи")
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
			return
		}
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось получить статью", err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// GetBySlug
// @Summary      Статья по slug
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Slug статьи"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  map[string]string
// @Router       /api/articles/slug/{slug} [get]
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	a, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
			return
		}
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось получить статью", err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// Delete
// @Summary      Удалить статью (только admin)
// @Tags         articles
// @Produce      json
// @Param        id  path  string  true  "UUID статьи"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Некорректный идентификатор статьи")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
			return
		}
		helpers.ErrorDetails(w, http.StatusInternalServerError, "Не удалось удалить статью", err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
