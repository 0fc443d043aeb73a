package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the static informational pages.
type PagesHandler struct{}

func (h *PagesHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

func (h *PagesHandler) LegalNotice(c *fiber.Ctx) error {
	return render(c, "legal", fiber.Map{"Title": "Mentions Légales"})
}

func (h *PagesHandler) Privacy(c *fiber.Ctx) error {
	return render(c, "privacy", fiber.Map{"Title": "Politique de Confidentialité"})
}
