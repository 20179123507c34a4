package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/notify/mocks"
	"github.com/example/bookshop/internal/storage"
)

func newTestStore() (*Store, *storage.Memory, *mocks.MockNotifier) {
	st := storage.NewMemory()
	notifier := mocks.NewMockNotifier()
	return NewStore(st, notifier), st, notifier
}

func testBook(id string, price float64, stock int) book.Book {
	return book.Book{ID: id, Title: "Book " + id, Author: "Author", Price: price, Stock: stock}
}

// ============================================
// Add Tests
// ============================================

func TestStore_Add_NewItem(t *testing.T) {
	s, _, notifier := newTestStore()

	err := s.Add(testBook("1", 12.99, 10), 1)

	require.NoError(t, err)
	c := s.Get()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.InDelta(t, 12.99, c.Total, 1e-9)

	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Added to cart", last.Title)
}

func TestStore_Add_SameBookAccumulates(t *testing.T) {
	s, _, notifier := newTestStore()
	b := testBook("1", 10, 100)

	require.NoError(t, s.Add(b, 2))
	require.NoError(t, s.Add(b, 3))

	c := s.Get()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.InDelta(t, 50, c.Total, 1e-9)

	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Cart updated", last.Title)
	assert.Contains(t, last.Description, "quantity increased to 5")
}

func TestStore_Add_ClampsToStock(t *testing.T) {
	s, _, _ := newTestStore()
	b := testBook("1", 10, 5)

	require.NoError(t, s.Add(b, 3))
	require.NoError(t, s.Add(b, 4))

	c := s.Get()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.InDelta(t, 50, c.Total, 1e-9)
}

// A line keeps the book snapshot taken when it was first added, so an
// add carrying a fresher record (say after an admin raised the stock)
// still clamps against that snapshot.
func TestStore_Add_ClampsToLineSnapshotStock(t *testing.T) {
	s, _, _ := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 2), 2))

	fresher := testBook("1", 10, 10)
	require.NoError(t, s.Add(fresher, 5))

	c := s.Get()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.Items[0].Book.Stock)
	assert.LessOrEqual(t, c.Items[0].Quantity, c.Items[0].Book.Stock)
}

func TestStore_Add_InvalidQuantity(t *testing.T) {
	s, _, notifier := newTestStore()

	assert.ErrorIs(t, s.Add(testBook("1", 10, 5), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.Add(testBook("1", 10, 5), -1), ErrInvalidQuantity)
	assert.Empty(t, s.Get().Items)
	assert.Empty(t, notifier.Calls)
}

func TestStore_Add_OutOfStock(t *testing.T) {
	s, _, _ := newTestStore()

	err := s.Add(testBook("1", 10, 0), 1)

	assert.ErrorIs(t, err, book.ErrOutOfStock)
	assert.Empty(t, s.Get().Items)
}

// ============================================
// UpdateQuantity Tests
// ============================================

func TestStore_UpdateQuantity_SetsAbsolute(t *testing.T) {
	s, _, _ := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 20), 2))

	s.UpdateQuantity("1", 7)

	c := s.Get()
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.InDelta(t, 70, c.Total, 1e-9)
}

func TestStore_UpdateQuantity_ClampsToStock(t *testing.T) {
	s, _, _ := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 1))

	s.UpdateQuantity("1", 10)

	assert.Equal(t, 5, s.Get().Items[0].Quantity)
}

func TestStore_UpdateQuantity_ZeroRemoves(t *testing.T) {
	s, _, notifier := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 2))

	s.UpdateQuantity("1", 0)

	assert.Empty(t, s.Get().Items)
	assert.InDelta(t, 0, s.Get().Total, 1e-9)
	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Removed from cart", last.Title)
}

func TestStore_UpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	s, _, _ := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 2))
	before := s.Get()

	s.UpdateQuantity("missing", 3)

	assert.Equal(t, before, s.Get())
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestStore_Remove(t *testing.T) {
	s, _, notifier := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 1))
	require.NoError(t, s.Add(testBook("2", 20, 5), 1))

	s.Remove("1")

	c := s.Get()
	require.Len(t, c.Items, 1)
	assert.Equal(t, "2", c.Items[0].Book.ID)
	assert.InDelta(t, 20, c.Total, 1e-9)

	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Removed from cart", last.Title)
	assert.Contains(t, last.Description, "Book 1")
}

func TestStore_Remove_AbsentIDLeavesCartUnchanged(t *testing.T) {
	s, _, notifier := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 1))
	before := s.Get()
	notifier.Reset()

	s.Remove("missing")

	assert.Equal(t, before, s.Get())
	assert.Empty(t, notifier.Calls)
}

func TestStore_Clear(t *testing.T) {
	s, _, notifier := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 2))

	s.Clear()

	c := s.Get()
	assert.Empty(t, c.Items)
	assert.InDelta(t, 0, c.Total, 1e-9)
	last, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Cart cleared", last.Title)
}

// ============================================
// Persistence Tests
// ============================================

func TestStore_PersistsAndRestores(t *testing.T) {
	st := storage.NewMemory()
	s := NewStore(st, mocks.NewMockNotifier())
	require.NoError(t, s.Add(testBook("1", 12.50, 10), 2))
	require.NoError(t, s.Add(testBook("2", 5, 10), 1))

	restored := NewStore(st, mocks.NewMockNotifier())

	assert.Equal(t, s.Get(), restored.Get())
}

func TestStore_DiscardsCorruptStoredCart(t *testing.T) {
	st := storage.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("{not json")))

	s := NewStore(st, mocks.NewMockNotifier())

	assert.Empty(t, s.Get().Items)
	_, ok, err := st.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "corrupt blob should be deleted")
}

// The stored total is recomputed on restore, so a blob with a stale
// total cannot poison the invariant.
func TestStore_RestoreRecomputesTotal(t *testing.T) {
	st := storage.NewMemory()
	blob := `{"items":[{"book":{"id":"1","title":"B","author":"A","price":10,"stock":5},"quantity":2}],"total":999}`
	require.NoError(t, st.Set(StorageKey, []byte(blob)))

	s := NewStore(st, mocks.NewMockNotifier())

	assert.InDelta(t, 20, s.Get().Total, 1e-9)
}

// ============================================
// Subscription Tests
// ============================================

func TestStore_SubscribersSeeEachMutation(t *testing.T) {
	s, _, _ := newTestStore()
	var seen []Cart
	unsubscribe := s.Subscribe(func(c Cart) { seen = append(seen, c) })

	require.NoError(t, s.Add(testBook("1", 10, 5), 1))
	s.UpdateQuantity("1", 3)
	s.Clear()

	require.Len(t, seen, 3)
	assert.InDelta(t, 10, seen[0].Total, 1e-9)
	assert.InDelta(t, 30, seen[1].Total, 1e-9)
	assert.Empty(t, seen[2].Items)

	unsubscribe()
	require.NoError(t, s.Add(testBook("1", 10, 5), 1))
	assert.Len(t, seen, 3)
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	s, _, _ := newTestStore()
	require.NoError(t, s.Add(testBook("1", 10, 5), 1))

	snap := s.Get()
	s.UpdateQuantity("1", 5)

	assert.Equal(t, 1, snap.Items[0].Quantity, "snapshot must not see later writes")
}
