package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"quotedesk/internal/domain"
)

type QuoteRepo struct{ db *sqlx.DB }

func NewQuoteRepo(db *sqlx.DB) *QuoteRepo { return &QuoteRepo{db: db} }

// QuoteItemRow is one line of a session's quote cart. Name/slug/image are
// the snapshot captured when the product was first added.
type QuoteItemRow struct {
	ProductID    string `db:"product_id"`
	ProductName  string `db:"product_name"`
	ProductSlug  string `db:"product_slug"`
	ProductImage string `db:"product_image"`
	Qty          int    `db:"qty"`
}

func (r *QuoteRepo) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM quote_carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := r.db.Exec(`INSERT INTO quote_carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// AddOne inserts the product with qty 1, or bumps qty by 1 if the line
// already exists. The conflict branch leaves the original snapshot columns
// untouched.
func (r *QuoteRepo) AddOne(cartID string, snap domain.ProductSnapshot) error {
	_, err := r.db.Exec(`
		INSERT INTO quote_items(cart_id,product_id,product_name,product_slug,product_image,qty,created_at)
		VALUES(?,?,?,?,?,1,CURRENT_TIMESTAMP)
		ON CONFLICT(cart_id,product_id) DO UPDATE
		SET qty = quote_items.qty + 1, updated_at = CURRENT_TIMESTAMP
	`, cartID, snap.ProductID, snap.ProductName, snap.ProductSlug, snap.ProductImage)
	return err
}

// SetQty overwrites the line's quantity. No-op if the line is absent.
func (r *QuoteRepo) SetQty(cartID, productID string, qty int) error {
	_, err := r.db.Exec(`
		UPDATE quote_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE cart_id = ? AND product_id = ?
	`, qty, cartID, productID)
	return err
}

func (r *QuoteRepo) Remove(cartID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM quote_items WHERE cart_id = ? AND product_id = ?`, cartID, productID)
	return err
}

func (r *QuoteRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM quote_items WHERE cart_id = ?`, cartID)
	return err
}

// Items enumerates the cart in insertion order.
func (r *QuoteRepo) Items(cartID string) ([]QuoteItemRow, error) {
	rows := []QuoteItemRow{}
	err := r.db.Select(&rows, `
	  SELECT product_id, product_name, product_slug, COALESCE(product_image,'') AS product_image, qty
	  FROM quote_items
	  WHERE cart_id = ?
	  ORDER BY created_at, product_id
	`, cartID)
	return rows, err
}

// ItemCount sums quantities across the cart (not the number of lines).
func (r *QuoteRepo) ItemCount(cartID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COALESCE(SUM(qty),0) FROM quote_items WHERE cart_id = ?`, cartID)
	return n, err
}

func (r *QuoteRepo) Contains(cartID, productID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM quote_items WHERE cart_id = ? AND product_id = ?`, cartID, productID); err != nil {
		return false, err
	}
	return n > 0, nil
}
