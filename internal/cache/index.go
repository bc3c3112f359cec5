package cache

import (
	"sync"

	"github.com/google/btree"
)

// indexKey identifies one main-list entry. Entries sort by descending order
// value (larger order is closer to the top of the list), ties broken by
// descending chat id.
type indexKey struct {
	order  uint64
	chatID int64
}

func keyLess(a, b indexKey) bool {
	if a.order != b.order {
		return a.order > b.order
	}
	return a.chatID > b.chatID
}

// Index is the ordered, duplicate-free view of the main chat list. A single
// mutex serializes every mutation and every TopN read, so readers always see
// a point-in-time-consistent list. The complete flag records that the
// backend reported the list as exhausted; it is guarded by the same mutex.
type Index struct {
	mu       sync.Mutex
	tree     *btree.BTreeG[indexKey]
	complete bool
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{tree: btree.NewG(32, keyLess)}
}

// Len returns the number of indexed chats.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tree.Len()
}

// Complete reports whether the backend has declared the main list exhausted.
func (x *Index) Complete() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.complete
}

// TopN returns up to n chat ids from the top of the list.
func (x *Index) TopN(n int) []int64 {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.topNLocked(n)
}

func (x *Index) topNLocked(n int) []int64 {
	if n <= 0 {
		return nil
	}
	ids := make([]int64, 0, n)
	x.tree.Ascend(func(k indexKey) bool {
		ids = append(ids, k.chatID)
		return len(ids) < n
	})
	return ids
}

func (x *Index) insertLocked(order uint64, chatID int64) {
	x.tree.ReplaceOrInsert(indexKey{order: order, chatID: chatID})
}

func (x *Index) removeLocked(order uint64, chatID int64) {
	x.tree.Delete(indexKey{order: order, chatID: chatID})
}

func (x *Index) lenLocked() int {
	return x.tree.Len()
}
