// Package admin implements the admin panel's inventory flows on top
// of the catalog store: validation, user notifications and the
// post-mutation redirect back to the book list.
package admin

import (
	"errors"

	"github.com/example/bookshop/internal/catalog"
	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/notify"
)

// BooksRoute is where every successful mutation redirects.
const BooksRoute = "/admin/books"

var ErrInvalidBook = errors.New("book fails validation")

// Navigator triggers a client-side route change after a mutation.
type Navigator interface {
	Redirect(route string)
}

// Service wires the catalog to the admin panel.
type Service struct {
	catalog  *catalog.Store
	notifier notify.Notifier
	nav      Navigator
}

// NewService creates the admin service.
func NewService(c *catalog.Store, notifier notify.Notifier, nav Navigator) *Service {
	return &Service{catalog: c, notifier: notifier, nav: nav}
}

// AddBook validates the input, creates the book and redirects to the
// book list. On validation failure nothing is mutated.
func (s *Service) AddBook(input book.Book) (book.Book, error) {
	if err := input.Validate(); err != nil {
		s.notifier.Notify(notify.Destructive("Validation Error", "Please fill in all required fields"))
		return book.Book{}, errors.Join(ErrInvalidBook, err)
	}

	created := s.catalog.Add(input)
	s.notifier.Notify(notify.Info("Book added",
		`"`+created.Title+`" has been added to the inventory`))
	s.nav.Redirect(BooksRoute)
	return created, nil
}

// UpdateBook validates and replaces an existing book. Unlike the raw
// catalog update, an unknown ID is surfaced to the user here.
func (s *Service) UpdateBook(b book.Book) (book.Book, error) {
	if err := b.Validate(); err != nil {
		s.notifier.Notify(notify.Destructive("Validation Error", "Please fill in all required fields"))
		return book.Book{}, errors.Join(ErrInvalidBook, err)
	}
	if _, err := s.catalog.Get(b.ID); err != nil {
		s.notifier.Notify(notify.Destructive("Book not found", "The requested book does not exist"))
		return book.Book{}, err
	}

	updated := s.catalog.Update(b)
	s.notifier.Notify(notify.Info("Book updated",
		`"`+updated.Title+`" has been updated`))
	s.nav.Redirect(BooksRoute)
	return updated, nil
}

// DeleteBook removes a book and redirects to the book list.
func (s *Service) DeleteBook(id string) (book.Book, error) {
	removed, err := s.catalog.Remove(id)
	if err != nil {
		s.notifier.Notify(notify.Destructive("Book not found", "The requested book does not exist"))
		return book.Book{}, err
	}

	s.notifier.Notify(notify.Info("Book deleted",
		`"`+removed.Title+`" has been removed from the inventory`))
	s.nav.Redirect(BooksRoute)
	return removed, nil
}
