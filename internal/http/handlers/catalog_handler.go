package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quotedesk/internal/log"
	"quotedesk/internal/repos"
	"quotedesk/internal/services"
	"quotedesk/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Quote   *services.QuoteService
}

// List serves /products. Search text, category and page all live in the
// URL so results stay shareable and the back button works; stale page
// numbers are clamped by the paging core.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	q := validate.Query(c.Query("q"))
	page := validate.Page(c.Query("page"))

	categoryID := ""
	catSlug := c.Query("category")
	if catSlug != "" {
		slug, ok := validate.Slug(catSlug)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			catSlug = ""
		} else if cat, err := h.Catalog.CategoryBySlug(slug); err == nil {
			categoryID = cat.ID
		} else if !errors.Is(err, repos.ErrNotFound) {
			log.Error(c, "catalog.category.error", err, nil)
		}
	}

	view, err := h.Catalog.Browse(q, categoryID, page)
	if err != nil {
		log.Error(c, "catalog.browse.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Le catalogue est momentanément indisponible. Veuillez réessayer."})
	}

	cats, err := h.Catalog.Categories()
	if err != nil {
		log.Error(c, "catalog.categories.error", err, nil)
	}
	inQuote := map[string]bool{}
	for _, p := range view.Products {
		if ok, err := h.Quote.Contains(sid, p.ID); err == nil && ok {
			inQuote[p.ID] = true
		}
	}
	count, _ := h.Quote.ItemCount(sid)

	return render(c, "products", fiber.Map{
		"Q":            q,
		"CategorySlug": catSlug,
		"Categories":   cats,
		"Products":     view.Products,
		"TotalMatches": view.TotalMatches,
		"TotalPages":   view.TotalPages,
		"Page":         view.Page,
		"InQuote":      inQuote,
		"QuoteCount":   count,
	})
}

// Detail serves /products/:slug.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce produit n'est plus disponible."})
	}
	p, err := h.Catalog.ProductBySlug(slug)
	if err != nil {
		if !errors.Is(err, repos.ErrNotFound) {
			log.Error(c, "catalog.detail.error", err, nil)
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce produit n'est plus disponible."})
	}

	var category any
	if p.CategoryID != "" {
		if cats, err := h.Catalog.Categories(); err == nil {
			for _, cat := range cats {
				if cat.ID == p.CategoryID {
					category = cat
					break
				}
			}
		}
	}
	inQuote, _ := h.Quote.Contains(sid, p.ID)
	count, _ := h.Quote.ItemCount(sid)

	return render(c, "product", fiber.Map{
		"P":          p,
		"Category":   category,
		"Specs":      p.Specifications(),
		"Images":     p.Images(),
		"InQuote":    inQuote,
		"QuoteCount": count,
	})
}
