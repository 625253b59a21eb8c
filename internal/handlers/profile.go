package handlers

import (
	"net/http"

	"seoblog/internal/reqctx"
	helpers "seoblog/internal/utils/helpers"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler { return &ProfileHandler{} }

// Me
// @Summary      Текущая идентичность
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/profile [get]
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := reqctx.GetUserEmail(r.Context())
	if !ok || email == "" {
		helpers.Error(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}

	name, _ := reqctx.GetUserName(r.Context())
	role, _ := reqctx.GetRole(r.Context())

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]string{
			"email": email,
			"name":  name,
			"role":  role,
		},
	})
}
