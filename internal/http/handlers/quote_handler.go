package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"quotedesk/internal/domain"
	"quotedesk/internal/log"
	"quotedesk/internal/repos"
	"quotedesk/internal/services"
	"quotedesk/internal/validate"
)

type QuoteHandler struct {
	Quote   *services.QuoteService
	Catalog *services.CatalogService
}

func (h *QuoteHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Quote.Items(sid)
	if err != nil {
		log.Error(c, "quote.view.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Votre sélection est momentanément indisponible."})
	}
	count, _ := h.Quote.ItemCount(sid)
	return render(c, "quote", fiber.Map{"Items": items, "QuoteCount": count})
}

// Add puts one unit of a product into the quote cart. The display snapshot
// is captured here, from the catalog as it stands at add time.
func (h *QuoteHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("missing productId")
	}

	snap := domain.ProductSnapshot{ProductID: productID}
	if slug, ok := validate.Slug(c.FormValue("slug")); ok {
		if p, err := h.Catalog.ProductBySlug(slug); err == nil && p.ID == productID {
			snap.ProductName = p.Name
			snap.ProductSlug = p.Slug
			snap.ProductImage = p.MainImage()
		} else if err != nil && !errors.Is(err, repos.ErrNotFound) {
			log.Error(c, "quote.add.lookup.error", err, nil)
		}
	}
	if snap.ProductName == "" {
		// Fall back to the posted display fields when the catalog lookup
		// didn't resolve; the cart stays usable on a content outage.
		snap.ProductName = c.FormValue("name")
		snap.ProductSlug = c.FormValue("slug")
		snap.ProductImage = c.FormValue("image")
	}

	if err := h.Quote.AddItem(sid, snap); err != nil {
		log.Error(c, "quote.add.error", err, nil)
		return c.Status(500).SendString("could not update selection")
	}
	log.Info(c, "quote.add", map[string]any{"product": productID})
	// Only same-site paths; "//host" would be an open redirect.
	if back := c.FormValue("back"); strings.HasPrefix(back, "/") && !strings.HasPrefix(back, "//") {
		return c.Redirect(back)
	}
	return c.Redirect("/quote")
}

// SetQuantity applies the stepper's absolute value; zero or less removes
// the line.
func (h *QuoteHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Quote.SetQuantity(sid, productID, qty); err != nil {
		log.Error(c, "quote.qty.error", err, nil)
		return c.Status(500).SendString("could not update selection")
	}
	return c.Redirect("/quote")
}

func (h *QuoteHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Quote.RemoveItem(sid, productID); err != nil {
		log.Error(c, "quote.remove.error", err, nil)
		return c.Status(500).SendString("could not update selection")
	}
	return c.Redirect("/quote")
}

func (h *QuoteHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Quote.Clear(sid); err != nil {
		log.Error(c, "quote.clear.error", err, nil)
		return c.Status(500).SendString("could not update selection")
	}
	return c.Redirect("/quote")
}

// Count backs the header badge: {"count": n} as JSON.
func (h *QuoteHandler) Count(c *fiber.Ctx) error {
	sid := ensureSID(c)
	n, err := h.Quote.ItemCount(sid)
	if err != nil {
		log.Error(c, "quote.count.error", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "unavailable"})
	}
	return c.JSON(fiber.Map{"count": n})
}
