package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quotedesk/internal/repos"
	"quotedesk/internal/validate"
)

// QuoteForm is the contact form as submitted, before validation.
type QuoteForm struct {
	Name          string
	Email         string
	Phone         string
	Company       string
	TaxID         string
	Message       string
	CustomRequest string
}

// AttachmentMeta is what the submission flow needs to know about an
// uploaded file; the bytes themselves stay with the transport.
type AttachmentMeta struct {
	Filename string
	Size     int64
}

// Inquiry is the payload handed to the delivery channel.
type Inquiry struct {
	ID          string
	Form        QuoteForm
	Items       []repos.QuoteItemRow
	Attachments []AttachmentMeta
}

// Sender delivers a quote request to a human-reviewed channel (email,
// ticketing, ...). One attempt per submission; no retry.
type Sender interface {
	Send(ctx context.Context, inq Inquiry) error
}

// SimulatedSender stands in for a real transport: it waits a fixed delay
// and always succeeds.
type SimulatedSender struct {
	Delay time.Duration
}

func (s SimulatedSender) Send(ctx context.Context, inq Inquiry) error {
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type InquiryService struct {
	Quotes    *QuoteService
	Inquiries *repos.InquiryRepo
	Sender    Sender
}

func NewInquiryService(quotes *QuoteService, inquiries *repos.InquiryRepo, sender Sender) *InquiryService {
	return &InquiryService{Quotes: quotes, Inquiries: inquiries, Sender: sender}
}

// ValidateForm checks the contact fields and returns user-visible messages
// keyed by field name. Empty map means the form is good.
func (s *InquiryService) ValidateForm(f QuoteForm) map[string]string {
	errs := map[string]string{}
	if _, ok := validate.Name(f.Name); !ok {
		errs["name"] = "Veuillez indiquer votre nom complet."
	}
	if _, ok := validate.Email(f.Email); !ok {
		errs["email"] = "Adresse email invalide."
	}
	if f.Phone != "" {
		if _, ok := validate.Phone(f.Phone); !ok {
			errs["phone"] = "Numéro de téléphone invalide."
		}
	}
	if f.TaxID != "" {
		if _, ok := validate.TaxID(f.TaxID); !ok {
			errs["taxid"] = "L'ICE doit comporter 15 chiffres."
		}
	}
	return errs
}

// ValidateAttachments enforces the upload rules: at most three files, each
// a pdf/jpg/png under the size cap.
func (s *InquiryService) ValidateAttachments(files []AttachmentMeta) (string, bool) {
	if len(files) > validate.MaxAttachments {
		return "Trois pièces jointes au maximum.", false
	}
	for _, f := range files {
		if !validate.Attachment(f.Filename, f.Size) {
			return "Pièce jointe refusée : PDF, JPG ou PNG de 5 Mo maximum.", false
		}
	}
	return "", true
}

// Submit delivers the quote request and, on success, records it and clears
// the session's cart. On failure the cart is left untouched so the user
// can retry with their selection intact.
func (s *InquiryService) Submit(ctx context.Context, sessionID string, form QuoteForm, files []AttachmentMeta) (string, error) {
	items, err := s.Quotes.Items(sessionID)
	if err != nil {
		return "", err
	}

	inq := Inquiry{
		ID:          uuid.NewString(),
		Form:        form,
		Items:       items,
		Attachments: files,
	}

	if err := s.Sender.Send(ctx, inq); err != nil {
		return "", err
	}

	if err := s.Inquiries.Create(repos.InquiryRow{
		ID:              inq.ID,
		SessionID:       sessionID,
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Company:         form.Company,
		TaxID:           form.TaxID,
		Message:         form.Message,
		CustomRequest:   form.CustomRequest,
		AttachmentCount: len(files),
	}); err != nil {
		return "", err
	}
	for _, it := range items {
		if err := s.Inquiries.InsertItem(inq.ID, it.ProductID, it.ProductName, it.Qty); err != nil {
			return "", err
		}
	}

	_ = s.Quotes.Clear(sessionID)
	return inq.ID, nil
}
