package handlers

import (
	"net/http"

	helpers "seoblog/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Healthz
// @Summary      Проверка живости
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Ping(r.Context()); err != nil {
		helpers.ErrorDetails(w, http.StatusServiceUnavailable, "База данных недоступна", err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
