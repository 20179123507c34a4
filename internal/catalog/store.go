// Package catalog holds the book list the storefront browses and the
// admin panel edits. The backing slice is replaced wholesale on every
// mutation, never patched in place, so a snapshot handed to a reader
// stays intact while later writes land.
package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/example/bookshop/internal/domain/book"
)

// Store is the in-memory book catalog.
type Store struct {
	mu    sync.RWMutex
	books []book.Book

	subs   map[int]func()
	nextID int
}

// NewStore creates a catalog seeded with the given books. Pass
// book.Seed() for the stock storefront data set.
func NewStore(seed []book.Book) *Store {
	books := make([]book.Book, len(seed))
	copy(books, seed)
	return &Store{
		books: books,
		subs:  make(map[int]func()),
	}
}

// List returns a copy of all books. The snapshot does not reflect
// later mutations.
func (s *Store) List() []book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Get returns the book with the given ID or book.ErrNotFound.
func (s *Store) Get(id string) (book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return book.Book{}, book.ErrNotFound
}

// Add assigns a fresh unique ID, appends the book and returns the
// created record. IDs are UUIDs rather than timestamps so rapid
// successive calls cannot collide.
func (s *Store) Add(b book.Book) book.Book {
	b.ID = uuid.New().String()

	s.mu.Lock()
	next := make([]book.Book, len(s.books)+1)
	copy(next, s.books)
	next[len(s.books)] = b
	s.books = next
	s.mu.Unlock()

	s.publish()
	return b
}

// Update replaces the record whose ID matches. When no record matches
// it performs no mutation and returns the input unchanged; lookup
// failures are the caller's concern.
func (s *Store) Update(b book.Book) book.Book {
	s.mu.Lock()
	replaced := false
	next := make([]book.Book, len(s.books))
	for i, cur := range s.books {
		if cur.ID == b.ID {
			next[i] = b
			replaced = true
		} else {
			next[i] = cur
		}
	}
	if replaced {
		s.books = next
	}
	s.mu.Unlock()

	if replaced {
		s.publish()
	}
	return b
}

// Remove deletes the record with the given ID and returns it, or
// book.ErrNotFound when absent.
func (s *Store) Remove(id string) (book.Book, error) {
	s.mu.Lock()
	var removed book.Book
	found := false
	next := make([]book.Book, 0, len(s.books))
	for _, cur := range s.books {
		if cur.ID == id {
			removed = cur
			found = true
			continue
		}
		next = append(next, cur)
	}
	if found {
		s.books = next
	}
	s.mu.Unlock()

	if !found {
		return book.Book{}, book.ErrNotFound
	}
	s.publish()
	return removed, nil
}

// Subscribe registers fn to run after every catalog mutation and
// returns an unsubscribe func.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
