package services

import (
	"quotedesk/internal/domain"
	"quotedesk/internal/repos"
)

const (
	DefaultPageSize = 9
	featuredLimit   = 6
)

type CatalogService struct {
	Content *repos.ContentRepo
}

func NewCatalogService(content *repos.ContentRepo) *CatalogService {
	return &CatalogService{Content: content}
}

func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.Content.Categories()
}

func (s *CatalogService) CategoryBySlug(slug string) (domain.Category, error) {
	return s.Content.CategoryBySlug(slug)
}

// Browse loads the active collection and derives the requested page. The
// filter runs from scratch on every call; the catalog is small enough that
// no indexing is worth the trouble.
func (s *CatalogService) Browse(query, categoryID string, page int) (CatalogPage, error) {
	products, err := s.Content.Products()
	if err != nil {
		return CatalogPage{}, err
	}
	return PageOf(products, query, categoryID, page, DefaultPageSize), nil
}

// ProductBySlug resolves a catalog detail page. Unknown or inactive slugs
// come back as repos.ErrNotFound rather than a zero Product.
func (s *CatalogService) ProductBySlug(slug string) (domain.Product, error) {
	return s.Content.ProductBySlug(slug)
}

func (s *CatalogService) FeaturedProducts() ([]domain.Product, error) {
	return s.Content.FeaturedProducts(featuredLimit)
}

func (s *CatalogService) HeroSlides() ([]domain.HeroSlide, error) {
	return s.Content.HeroSlides()
}
