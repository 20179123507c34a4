// Package session holds the mock-authenticated identity. Login and
// register simulate a network round trip; nothing is verified beyond
// the fixed demo credential, and the admin flag is derived from the
// email address alone. The identity persists in durable storage so it
// survives restarts, unlike the session-scoped cart.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/bookshop/internal/notify"
	"github.com/example/bookshop/internal/storage"
)

// StorageKey is the durable-storage key the identity blob lives under.
const StorageKey = "user"

// DefaultDelay is the simulated API round-trip latency.
const DefaultDelay = 800 * time.Millisecond

// DemoPassword is the only password Login accepts.
const DemoPassword = "password"

var ErrInvalidCredentials = errors.New("invalid email or password")

// Status is the store's authentication state.
type Status int

const (
	Anonymous Status = iota
	Authenticating
	Authenticated
)

// Identity is the signed-in user. Admin is derived, not granted: any
// email containing "admin" gets the flag.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"is_admin"`
}

// Navigator triggers a client-side route change after auth events.
type Navigator interface {
	Redirect(route string)
}

// Store holds at most one identity.
type Store struct {
	mu       sync.RWMutex
	identity *Identity
	status   Status

	storage  storage.Storage
	notifier notify.Notifier
	nav      Navigator
	delay    time.Duration
	demoHash string

	subs   map[int]func()
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithDelay overrides the simulated network delay (tests use zero).
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// NewStore rehydrates the identity persisted under StorageKey. A
// corrupt stored value is logged, deleted and treated as anonymous.
func NewStore(st storage.Storage, notifier notify.Notifier, nav Navigator, opts ...Option) *Store {
	hash, err := hashPassword(DemoPassword)
	if err != nil {
		// bcrypt only fails on malformed cost; the constant cost is valid.
		log.Printf("[Session] Failed to hash demo credential: %v", err)
	}

	s := &Store{
		storage:  st,
		notifier: notifier,
		nav:      nav,
		delay:    DefaultDelay,
		demoHash: hash,
		subs:     make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}

	var restored Identity
	found, err := storage.GetJSON(st, StorageKey, &restored)
	switch {
	case err != nil:
		log.Printf("[Session] Discarding stored identity: %v", err)
		if derr := st.Delete(StorageKey); derr != nil {
			log.Printf("[Session] Failed to delete stored identity: %v", derr)
		}
	case found:
		s.identity = &restored
		s.status = Authenticated
	}
	return s
}

// Current returns the signed-in identity, if any.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Status returns the store's authentication state.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Login authenticates with the demo credential: any non-empty email
// plus DemoPassword. The attempt spends the configured delay in
// Authenticating; if ctx is cancelled first the result is discarded
// (no identity change, no notification) and ctx.Err() is returned.
func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	prev := s.setStatus(Authenticating)

	if err := s.wait(ctx); err != nil {
		s.restoreStatus(prev)
		return Identity{}, err
	}

	if email == "" || !checkPassword(password, s.demoHash) {
		s.setStatus(Anonymous)
		s.clearIdentity()
		s.notifier.Notify(notify.Destructive("Login failed", "Invalid email or password"))
		return Identity{}, ErrInvalidCredentials
	}

	id := Identity{
		ID:    uuid.New().String(),
		Name:  localPart(email),
		Email: email,
		Admin: isAdminEmail(email),
	}
	s.setIdentity(id)
	s.notifier.Notify(notify.Info("Login successful", "Welcome back, "+id.Name+"!"))
	s.nav.Redirect("/")
	return id, nil
}

// Register creates an identity without any uniqueness or strength
// checks; it fails only when ctx is cancelled during the simulated
// delay, in which case the attempt is discarded like a stale login.
func (s *Store) Register(ctx context.Context, name, email, password string) (Identity, error) {
	prev := s.setStatus(Authenticating)

	if err := s.wait(ctx); err != nil {
		s.restoreStatus(prev)
		return Identity{}, err
	}

	id := Identity{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Admin: isAdminEmail(email),
	}
	s.setIdentity(id)
	s.notifier.Notify(notify.Info("Registration successful", "Welcome, "+id.Name+"!"))
	s.nav.Redirect("/")
	return id, nil
}

// Logout clears the identity synchronously.
func (s *Store) Logout() {
	s.setStatus(Anonymous)
	s.clearIdentity()
	s.notifier.Notify(notify.Info("Logged out", "You have been successfully logged out"))
	s.nav.Redirect("/")
}

// Subscribe registers fn to run after every state change and returns
// an unsubscribe func.
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

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Store) setStatus(st Status) (prev Status) {
	s.mu.Lock()
	prev = s.status
	s.status = st
	s.mu.Unlock()
	s.publish()
	return prev
}

// restoreStatus rolls a cancelled attempt back to the state the store
// was in before it entered Authenticating.
func (s *Store) restoreStatus(prev Status) {
	s.mu.Lock()
	s.status = prev
	s.mu.Unlock()
	s.publish()
}

func (s *Store) setIdentity(id Identity) {
	s.mu.Lock()
	s.identity = &id
	s.status = Authenticated
	s.mu.Unlock()

	if err := storage.SetJSON(s.storage, StorageKey, id); err != nil {
		log.Printf("[Session] Failed to persist identity: %v", err)
	}
	s.publish()
}

func (s *Store) clearIdentity() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	if err := s.storage.Delete(StorageKey); err != nil {
		log.Printf("[Session] Failed to delete stored identity: %v", err)
	}
	s.publish()
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

func isAdminEmail(email string) bool {
	return strings.Contains(strings.ToLower(email), "admin")
}

// localPart derives a display name from the email address.
func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
