package services

import (
	"quotedesk/internal/domain"
	"quotedesk/internal/repos"
)

// QuoteService is the single source of truth for what a session wants a
// quote for. Every mutation is written through to storage before it
// returns, so a page reload never loses the last completed operation.
type QuoteService struct {
	Carts *repos.QuoteRepo
}

func NewQuoteService(carts *repos.QuoteRepo) *QuoteService {
	return &QuoteService{Carts: carts}
}

// AddItem adds one unit of the product. A product already in the cart has
// its quantity bumped by 1; its name/slug/image snapshot stays as captured
// on first add.
func (s *QuoteService) AddItem(sessionID string, snap domain.ProductSnapshot) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.AddOne(cartID, snap)
}

// RemoveItem drops the product from the cart. Removing an absent product is
// a no-op, not an error.
func (s *QuoteService) RemoveItem(sessionID, productID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Remove(cartID, productID)
}

// SetQuantity sets the product's quantity to an absolute value. Zero or
// negative collapses to removal, keeping the qty >= 1 invariant for any
// present line.
func (s *QuoteService) SetQuantity(sessionID, productID string, qty int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return s.Carts.Remove(cartID, productID)
	}
	return s.Carts.SetQty(cartID, productID, qty)
}

// Clear empties the cart unconditionally. Called after a successful quote
// submission.
func (s *QuoteService) Clear(sessionID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}

// ItemCount is the sum of quantities across the cart, which is what the
// header badge shows.
func (s *QuoteService) ItemCount(sessionID string) (int, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return 0, err
	}
	return s.Carts.ItemCount(cartID)
}

// Contains reports whether the product is in the cart, for the add/added
// toggle on catalog cards.
func (s *QuoteService) Contains(sessionID, productID string) (bool, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return false, err
	}
	return s.Carts.Contains(cartID, productID)
}

func (s *QuoteService) Items(sessionID string) ([]repos.QuoteItemRow, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Carts.Items(cartID)
}
