package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"seoblog/internal/logger"
	"seoblog/internal/services"

	"go.uber.org/zap"
)

type SitemapHandler struct {
	svc     services.ArticleService
	siteURL string
}

func NewSitemapHandler(svc services.ArticleService, siteURL string) *SitemapHandler {
	return &SitemapHandler{svc: svc, siteURL: strings.TrimRight(siteURL, "/")}
}

// Sitemap
// @Summary      Карта сайта
// @Tags         sitemap
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/sitemap [get]
func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.GetAll(r.Context(), "")
	if err != nil {
		logger.WithCtx(r.Context()).Error("Не удалось собрать sitemap", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, a := range articles {
		lastmod := a.UpdatedAt
		if lastmod.IsZero() {
			lastmod = a.CreatedAt
		}
		fmt.Fprintf(&b, "  <url>\n    <loc>%s/blog/%s</loc>\n    <lastmod>%s</lastmod>\n  </url>\n",
			h.siteURL, a.Slug, lastmod.Format("2006-01-02"))
	}
	b.WriteString("</urlset>\n")

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(b.String()))
}
