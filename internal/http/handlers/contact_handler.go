package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quotedesk/internal/log"
	"quotedesk/internal/services"
)

type ContactHandler struct {
	Quote   *services.QuoteService
	Inquiry *services.InquiryService
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Quote.Items(sid)
	if err != nil {
		log.Error(c, "contact.items.error", err, nil)
	}
	count, _ := h.Quote.ItemCount(sid)
	return render(c, "contact", fiber.Map{
		"Items": items, "QuoteCount": count,
		"Form": services.QuoteForm{}, "Errors": map[string]string{},
	})
}

// Submit handles the multipart quote-request POST. Validation failures
// re-render the form with messages; only a delivery failure keeps the
// selection for a retry.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)

	// A filled honeypot means a bot; pretend everything went fine.
	if c.FormValue("website") != "" {
		log.Security(c, "contact.honeypot", nil)
		return render(c, "contact_success", fiber.Map{})
	}

	form := services.QuoteForm{
		Name:          c.FormValue("name"),
		Email:         c.FormValue("email"),
		Phone:         c.FormValue("phone"),
		Company:       c.FormValue("company"),
		TaxID:         c.FormValue("ice"),
		Message:       c.FormValue("message"),
		CustomRequest: c.FormValue("customRequest"),
	}

	var files []services.AttachmentMeta
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for _, fh := range mf.File["attachments"] {
			files = append(files, services.AttachmentMeta{Filename: fh.Filename, Size: fh.Size})
		}
	}

	rerender := func(errs map[string]string, notice string) error {
		if errs == nil {
			errs = map[string]string{}
		}
		items, _ := h.Quote.Items(sid)
		count, _ := h.Quote.ItemCount(sid)
		c.Status(fiber.StatusBadRequest)
		return render(c, "contact", fiber.Map{
			"Items": items, "QuoteCount": count, "Form": form,
			"Errors": errs, "Notice": notice,
		})
	}

	if errs := h.Inquiry.ValidateForm(form); len(errs) > 0 {
		log.Security(c, "validation.fail", map[string]any{"fields": len(errs)})
		return rerender(errs, "")
	}
	if msg, ok := h.Inquiry.ValidateAttachments(files); !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "attachments"})
		return rerender(nil, msg)
	}

	id, err := h.Inquiry.Submit(c.Context(), sid, form, files)
	if err != nil {
		// Selection is retained; the user can retry as-is.
		log.Error(c, "contact.submit.error", err, nil)
		items, _ := h.Quote.Items(sid)
		count, _ := h.Quote.ItemCount(sid)
		c.Status(fiber.StatusBadGateway)
		return render(c, "contact", fiber.Map{
			"Items": items, "QuoteCount": count, "Form": form,
			"Errors": map[string]string{},
			"Notice": "L'envoi a échoué. Votre sélection est conservée, veuillez réessayer.",
		})
	}

	log.Audit(c, "inquiry.submit", map[string]any{"inquiry": id})
	return render(c, "contact_success", fiber.Map{})
}
