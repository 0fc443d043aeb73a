package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quotedesk/internal/log"
	"quotedesk/internal/services"
)

type HomeHandler struct {
	Catalog *services.CatalogService
	Quote   *services.QuoteService
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	slides, err := h.Catalog.HeroSlides()
	if err != nil {
		log.Error(c, "home.slides.error", err, nil)
	}
	cats, err := h.Catalog.Categories()
	if err != nil {
		log.Error(c, "home.categories.error", err, nil)
	}
	featured, err := h.Catalog.FeaturedProducts()
	if err != nil {
		log.Error(c, "home.featured.error", err, nil)
	}
	// Partial content renders with what loaded; a broken content store
	// should not blank the landing page.
	count, _ := h.Quote.ItemCount(ensureSID(c))
	return render(c, "home", fiber.Map{
		"Slides":     slides,
		"Categories": cats,
		"Featured":   featured,
		"QuoteCount": count,
	})
}
