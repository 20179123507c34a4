// Package cart holds the shopper's pending line items. The cart lives
// in session-scoped storage: it survives reloads within a session and
// is written back after every mutation. Each line carries the book
// snapshot taken at add time, so later catalog edits do not reprice
// items already in the cart.
package cart

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/notify"
	"github.com/example/bookshop/internal/storage"
)

// StorageKey is the session-storage key the cart blob lives under.
const StorageKey = "cart"

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Item is one cart line: a book snapshot and how many copies of it.
type Item struct {
	Book     book.Book `json:"book"`
	Quantity int       `json:"quantity"`
}

// Cart is the persisted shape: ordered lines plus the derived total.
// Total is always recomputed from Items, never set independently.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// Subtotal is the line's contribution to the cart total.
func (i Item) Subtotal() float64 {
	return i.Book.Price * float64(i.Quantity)
}

// Store mutates and persists the cart.
type Store struct {
	mu       sync.RWMutex
	cart     Cart
	storage  storage.Storage
	notifier notify.Notifier

	subs   map[int]func(Cart)
	nextID int
}

// NewStore restores the cart persisted under StorageKey. A corrupt
// stored value is logged, deleted and replaced by an empty cart.
func NewStore(st storage.Storage, notifier notify.Notifier) *Store {
	s := &Store{
		storage:  st,
		notifier: notifier,
		subs:     make(map[int]func(Cart)),
	}

	var restored Cart
	found, err := storage.GetJSON(st, StorageKey, &restored)
	switch {
	case err != nil:
		log.Printf("[Cart] Discarding stored cart: %v", err)
		if derr := st.Delete(StorageKey); derr != nil {
			log.Printf("[Cart] Failed to delete stored cart: %v", derr)
		}
	case found:
		restored.Total = total(restored.Items)
		s.cart = restored
	}
	return s
}

// Get returns a snapshot of the cart. The items slice is a copy;
// callers may hold it across later mutations.
func (s *Store) Get() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.clone()
}

// Add puts qty copies of b in the cart. If the book is already
// present its quantity is increased, otherwise a new line is appended.
// The resulting quantity is capped at the line's stock snapshot, taken
// when the book was first added.
func (s *Store) Add(b book.Book, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if !b.InStock() {
		return book.ErrOutOfStock
	}

	var n notify.Notification
	s.mutate(func(c *Cart) bool {
		for i, item := range c.Items {
			if item.Book.ID == b.ID {
				c.Items[i].Quantity = clamp(item.Quantity+qty, item.Book.Stock)
				n = notify.Info("Cart updated",
					fmt.Sprintf("%s quantity increased to %d", b.Title, c.Items[i].Quantity))
				return true
			}
		}
		c.Items = append(c.Items, Item{Book: b, Quantity: clamp(qty, b.Stock)})
		n = notify.Info("Added to cart", b.Title+" added to your cart")
		return true
	})

	s.notifier.Notify(n)
	return nil
}

// UpdateQuantity sets the line for bookID to exactly qty, capped at
// the snapshot's stock. qty <= 0 removes the line. An absent ID is a
// no-op.
func (s *Store) UpdateQuantity(bookID string, qty int) {
	if qty <= 0 {
		s.Remove(bookID)
		return
	}

	s.mutate(func(c *Cart) bool {
		for i, item := range c.Items {
			if item.Book.ID == bookID {
				c.Items[i].Quantity = clamp(qty, item.Book.Stock)
				return true
			}
		}
		return false
	})
}

// Remove deletes the line for bookID if present. Removing an absent
// ID leaves the cart unchanged and emits nothing.
func (s *Store) Remove(bookID string) {
	var removed Item
	found := false
	s.mutate(func(c *Cart) bool {
		for i, item := range c.Items {
			if item.Book.ID == bookID {
				removed = item
				found = true
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return true
			}
		}
		return false
	})

	if found {
		s.notifier.Notify(notify.Info("Removed from cart",
			removed.Book.Title+" removed from your cart"))
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mutate(func(c *Cart) bool {
		c.Items = nil
		return true
	})
	s.notifier.Notify(notify.Info("Cart cleared",
		"All items have been removed from your cart"))
}

// Subscribe registers fn to receive a snapshot after every mutation
// and returns an unsubscribe func.
func (s *Store) Subscribe(fn func(Cart)) func() {
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

// mutate applies fn to a working copy, recomputes the total, swaps the
// copy in, persists it and fans the snapshot out to subscribers. fn
// reports whether anything changed; a no-op skips persistence and
// subscribers. Items and total change in one atomic step so no reader
// ever sees a total that disagrees with the lines.
func (s *Store) mutate(fn func(*Cart) bool) {
	s.mu.Lock()
	next := s.cart.clone()
	if !fn(&next) {
		s.mu.Unlock()
		return
	}
	next.Total = total(next.Items)
	s.cart = next

	if err := storage.SetJSON(s.storage, StorageKey, next); err != nil {
		log.Printf("[Cart] Failed to persist cart: %v", err)
	}

	fns := make([]func(Cart), 0, len(s.subs))
	for _, sub := range s.subs {
		fns = append(fns, sub)
	}
	s.mu.Unlock()

	for _, sub := range fns {
		sub(next.clone())
	}
}

func (c Cart) clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Total: c.Total}
}

func total(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Subtotal()
	}
	return sum
}

func clamp(qty, stock int) int {
	if stock > 0 && qty > stock {
		return stock
	}
	return qty
}
