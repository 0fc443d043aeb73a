package repos

import (
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by lookups for content that does not exist
// (unknown slug, inactive product).
var ErrNotFound = errors.New("not found")

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed catalog content if DB is empty (categories/products/hero slides)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  icon TEXT DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  images_json TEXT DEFAULT '[]',
  specs_json TEXT DEFAULT '[]',
  datasheet_url TEXT DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug ON products(slug);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Hero carousel
CREATE TABLE IF NOT EXISTS hero_slides(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  subtitle TEXT DEFAULT '',
  description TEXT DEFAULT '',
  image TEXT NOT NULL,
  position INTEGER NOT NULL DEFAULT 0
);

-- Quote carts (one per browsing session)
CREATE TABLE IF NOT EXISTS quote_carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS quote_items(
  cart_id    TEXT NOT NULL REFERENCES quote_carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  product_name  TEXT NOT NULL,
  product_slug  TEXT NOT NULL,
  product_image TEXT DEFAULT '',
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);

-- Submitted quote requests, kept for staff review
CREATE TABLE IF NOT EXISTS inquiries(
  id TEXT PRIMARY KEY,
  session_id TEXT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT DEFAULT '',
  company TEXT DEFAULT '',
  tax_id TEXT DEFAULT '',
  message TEXT DEFAULT '',
  custom_request TEXT DEFAULT '',
  attachment_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at);

CREATE TABLE IF NOT EXISTS inquiry_items(
  inquiry_id TEXT NOT NULL REFERENCES inquiries(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  qty INTEGER NOT NULL,
  PRIMARY KEY (inquiry_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products/hero slides")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name,slug,icon) VALUES
	  ('cat-hygiene','Hygiène & Nettoyage','hygiene-nettoyage','droplets'),
	  ('cat-workwear','Vêtements de Travail','vetements-travail','shirt'),
	  ('cat-it','Matériel Informatique','materiel-informatique','monitor')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,slug,description,images_json,specs_json,featured) VALUES
	  ('prd-detergent','cat-hygiene','Détergent Multi-Surface Pro','detergent-multi-surface',
	   'Nettoyant professionnel multi-usages pour toutes surfaces. Formule concentrée haute performance.',
	   '["products/detergent-multi-surface/main.jpg"]',
	   '[{"label":"Référence","value":"DET-MUL-001"},{"label":"Contenance","value":"5 Litres"},{"label":"Dilution","value":"1:50"},{"label":"pH","value":"8.5"}]',1),
	  ('prd-gel','cat-hygiene','Gel Hydroalcoolique 5L','gel-hydroalcoolique',
	   'Gel désinfectant pour les mains, bidon économique 5 litres.',
	   '["products/gel-hydroalcoolique/main.jpg"]',
	   '[{"label":"Référence","value":"GEL-HYD-004"},{"label":"Contenance","value":"5 Litres"}]',1),
	  ('prd-combinaison','cat-workwear','Combinaison de Travail','combinaison-travail',
	   'Combinaison professionnelle résistante et confortable pour tous types de travaux.',
	   '["products/combinaison-travail/main.jpg"]',
	   '[{"label":"Référence","value":"CMB-TRV-002"},{"label":"Tailles","value":"S, M, L, XL, XXL"},{"label":"Norme","value":"EN ISO 13688"}]',1),
	  ('prd-toner','cat-it','Cartouche Toner HP','cartouche-toner-hp',
	   'Toner compatible haute qualité pour imprimantes HP. Rendement optimal.',
	   '["products/cartouche-toner-hp/main.jpg"]',
	   '[{"label":"Référence","value":"TNR-HP-003"},{"label":"Rendement","value":"3000 pages"},{"label":"Couleur","value":"Noir"}]',0),
	  ('prd-ramette','cat-it','Ramette Papier A4','ramette-papier-a4',
	   'Papier blanc 80g/m², ramette de 500 feuilles pour impression et copie.',
	   '["products/ramette-papier-a4/main.jpg"]','[]',0)`)

	tx.MustExec(`INSERT INTO hero_slides(id,title,subtitle,description,image,position) VALUES
	  ('slide-hygiene','Produits d''Hygiène','& Consommables',
	   'Gamme complète de produits d''hygiène professionnelle, détergents, désinfectants et consommables.',
	   'hero/hygiene.jpg',0),
	  ('slide-workwear','Vêtements de Travail','& Équipements de Sécurité',
	   'Vêtements de travail, EPI, chaussures de sécurité et matériel de chantier aux normes.',
	   'hero/workwear.jpg',1),
	  ('slide-it','Matériel Informatique','& Consommables d''Impression',
	   'Ordinateurs, imprimantes, toners, cartouches d''encre et fournitures de bureau.',
	   'hero/it.jpg',2)`)

	return tx.Commit()
}
