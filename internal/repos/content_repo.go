package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"quotedesk/internal/domain"
)

// ContentRepo is the read-only view over the catalog content (categories,
// products, hero slides). The rest of the app only ever reads from it.
type ContentRepo struct{ db *sqlx.DB }

func NewContentRepo(db *sqlx.DB) *ContentRepo { return &ContentRepo{db: db} }

func (r *ContentRepo) Categories() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, slug, icon, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *ContentRepo) CategoryBySlug(slug string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, slug, icon, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE slug = ?
	`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, ErrNotFound
	}
	return c, err
}

// Products returns the full active collection, newest first. The catalog is
// small (tens to low hundreds of items); filtering and paging happen in
// memory on top of this.
func (r *ContentRepo) Products() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(category_id,'') AS category_id, name, slug, description,
	         images_json, specs_json, datasheet_url, featured, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE active = 1
	  ORDER BY created_at DESC, id
	`)
	return out, err
}

func (r *ContentRepo) ProductBySlug(slug string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, COALESCE(category_id,'') AS category_id, name, slug, description,
	         images_json, specs_json, datasheet_url, featured, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE slug = ? AND active = 1
	`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

// FeaturedProducts backs the home page preview.
func (r *ContentRepo) FeaturedProducts(limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(category_id,'') AS category_id, name, slug, description,
	         images_json, specs_json, datasheet_url, featured, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE active = 1 AND featured = 1
	  ORDER BY created_at DESC, id
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *ContentRepo) HeroSlides() ([]domain.HeroSlide, error) {
	var out []domain.HeroSlide
	err := r.db.Select(&out, `
	  SELECT id, title, subtitle, description, image, position
	  FROM hero_slides
	  ORDER BY position, id
	`)
	return out, err
}
