package book

import "errors"

var (
	ErrNotFound   = errors.New("book not found")
	ErrInvalidID  = errors.New("book id is required")
	ErrOutOfStock = errors.New("book is out of stock")
)

// Book is a catalog entry. ID is assigned by the catalog on creation
// and never changes afterwards.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	CoverImage  string  `json:"cover_image"`
	Description string  `json:"description"`
	ISBN        string  `json:"isbn"`
	Publisher   string  `json:"publisher"`
	PublishYear int     `json:"publish_year"`
	Pages       int     `json:"pages"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// Validate checks the fields the admin form marks as required.
func (b Book) Validate() error {
	if b.Title == "" {
		return errors.New("title is required")
	}
	if b.Author == "" {
		return errors.New("author is required")
	}
	if b.Price <= 0 {
		return errors.New("price must be positive")
	}
	if b.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

// InStock reports whether at least one copy can be sold.
func (b Book) InStock() bool {
	return b.Stock > 0
}
