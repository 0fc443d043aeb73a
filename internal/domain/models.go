package domain

import "encoding/json"

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	Icon      string `db:"icon"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Product struct {
	ID           string `db:"id"`
	CategoryID   string `db:"category_id"`
	Name         string `db:"name"`
	Slug         string `db:"slug"`
	Description  string `db:"description"`
	ImagesJSON   string `db:"images_json"`
	SpecsJSON    string `db:"specs_json"`
	DatasheetURL string `db:"datasheet_url"`
	Featured     bool   `db:"featured"`
	Active       bool   `db:"active"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

// Specification is one label/value row of a product's technical sheet,
// decoded from Product.SpecsJSON.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type HeroSlide struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Subtitle    string `db:"subtitle"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Position    int    `db:"position"`
}

// ProductSnapshot carries the display fields captured when a product is
// added to the quote cart. The snapshot is not refreshed if the catalog
// entry changes afterwards.
type ProductSnapshot struct {
	ProductID    string
	ProductName  string
	ProductSlug  string
	ProductImage string
}

// Images decodes the product's image references. A broken or empty JSON
// column yields an empty slice, never an error: the templates just render
// a placeholder.
func (p Product) Images() []string {
	var out []string
	if json.Unmarshal([]byte(p.ImagesJSON), &out) != nil {
		return nil
	}
	return out
}

// MainImage is the first image reference, or "" when the product has none.
func (p Product) MainImage() string {
	if imgs := p.Images(); len(imgs) > 0 {
		return imgs[0]
	}
	return ""
}

// Specifications decodes the ordered label/value spec pairs.
func (p Product) Specifications() []Specification {
	var out []Specification
	if json.Unmarshal([]byte(p.SpecsJSON), &out) != nil {
		return nil
	}
	return out
}
