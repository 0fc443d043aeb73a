package handlers

import (
	"time"

	"github.com/jmoiron/sqlx"

	"quotedesk/internal/config"
	"quotedesk/internal/repos"
	"quotedesk/internal/services"
)

type Deps struct {
	HomeHandler    *HomeHandler
	CatalogHandler *CatalogHandler
	QuoteHandler   *QuoteHandler
	ContactHandler *ContactHandler
	PagesHandler   *PagesHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	contentRepo := repos.NewContentRepo(db)
	quoteRepo := repos.NewQuoteRepo(db)
	inquiryRepo := repos.NewInquiryRepo(db)

	catalogSvc := services.NewCatalogService(contentRepo)
	quoteSvc := services.NewQuoteService(quoteRepo)
	// Delivery is simulated for now; swapping in a real transport only
	// means wiring a different services.Sender here.
	inquirySvc := services.NewInquiryService(quoteSvc, inquiryRepo, services.SimulatedSender{Delay: 1500 * time.Millisecond})

	return &Deps{
		HomeHandler:    &HomeHandler{Catalog: catalogSvc, Quote: quoteSvc},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc, Quote: quoteSvc},
		QuoteHandler:   &QuoteHandler{Quote: quoteSvc, Catalog: catalogSvc},
		ContactHandler: &ContactHandler{Quote: quoteSvc, Inquiry: inquirySvc},
		PagesHandler:   &PagesHandler{},
	}
}
