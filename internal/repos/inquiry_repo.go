package repos

import "github.com/jmoiron/sqlx"

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

type InquiryRow struct {
	ID              string `db:"id"`
	SessionID       string `db:"session_id"`
	Name            string `db:"name"`
	Email           string `db:"email"`
	Phone           string `db:"phone"`
	Company         string `db:"company"`
	TaxID           string `db:"tax_id"`
	Message         string `db:"message"`
	CustomRequest   string `db:"custom_request"`
	AttachmentCount int    `db:"attachment_count"`
	CreatedAt       string `db:"created_at"`
}

type InquiryItemRow struct {
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	Qty         int    `db:"qty"`
}

// Create inserts a new inquiry header.
func (r *InquiryRepo) Create(q InquiryRow) error {
	_, err := r.db.Exec(`
	  INSERT INTO inquiries
	    (id, session_id, name, email, phone, company, tax_id, message, custom_request, attachment_count, created_at)
	  VALUES
	    (?,  ?,          ?,    ?,     ?,     ?,       ?,      ?,       ?,              ?,               CURRENT_TIMESTAMP)
	`, q.ID, q.SessionID, q.Name, q.Email, q.Phone, q.Company, q.TaxID, q.Message, q.CustomRequest, q.AttachmentCount)
	return err
}

// InsertItem inserts a single requested product line.
func (r *InquiryRepo) InsertItem(inquiryID, productID, productName string, qty int) error {
	_, err := r.db.Exec(`
	  INSERT INTO inquiry_items(inquiry_id, product_id, product_name, qty)
	  VALUES(?, ?, ?, ?)
	`, inquiryID, productID, productName, qty)
	return err
}

func (r *InquiryRepo) Get(inquiryID string) (InquiryRow, []InquiryItemRow, error) {
	var q InquiryRow
	if err := r.db.Get(&q, `
		SELECT id, COALESCE(session_id,'') AS session_id, name, email, phone, company, tax_id,
		       message, custom_request, attachment_count, created_at
		FROM inquiries
		WHERE id = ?
	`, inquiryID); err != nil {
		return InquiryRow{}, nil, err
	}

	var items []InquiryItemRow
	if err := r.db.Select(&items, `
		SELECT product_id, product_name, qty
		FROM inquiry_items
		WHERE inquiry_id = ?
		ORDER BY product_name
	`, inquiryID); err != nil {
		return InquiryRow{}, nil, err
	}

	return q, items, nil
}

// ListLatest returns the most recent inquiries for review.
func (r *InquiryRepo) ListLatest(limit int) ([]InquiryRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []InquiryRow
	err := r.db.Select(&out, `
		SELECT id, COALESCE(session_id,'') AS session_id, name, email, phone, company, tax_id,
		       message, custom_request, attachment_count, created_at
		FROM inquiries
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}
