// Package store keeps items in process memory, in insertion order, and
// hands out copies of them.
package store

import (
	"errors"
	"sync"

	"github.com/gostream-official/tracks/pkg/arrays"
	"github.com/gostream-official/tracks/pkg/store/query"
)

// Description:
//
//	Returned when no item carries the requested id.
var ErrItemNotFound = errors.New("store: item not found")

// Description:
//
//	An item that can be kept in a memory store.
//	Items are stored by value, so implementations should not hold
//	references that the caller could mutate after a read.
type Item interface {
	query.Document

	// Identity returns the id assigned to the item by the store.
	Identity() int
}

// Description:
//
//	A mutex-guarded, insertion-ordered in-memory store.
//	Ids come from a counter that only ever increases, so they are never
//	reused, not even after a delete.
type MemoryStore[T Item] struct {
	mutex  sync.RWMutex
	items  []T
	nextID int
}

// Description:
//
//	Creates a memory store preloaded with the given items.
//
// Parameters:
//
//	seed 	The initial items, in order.
//	nextID 	The id handed to the first created item. It is raised above
//			the highest seed id if necessary.
//
// Returns:
//
//	The created store.
func NewMemoryStore[T Item](seed []T, nextID int) *MemoryStore[T] {
	items := make([]T, len(seed))
	copy(items, seed)

	for _, item := range items {
		if item.Identity() >= nextID {
			nextID = item.Identity() + 1
		}
	}

	return &MemoryStore[T]{
		items:  items,
		nextID: nextID,
	}
}

// Description:
//
//	Returns every item matching the filter, in insertion order.
//
// Parameters:
//
//	filter The filter to apply. A nil filter matches everything.
//
// Returns:
//
//	A copy of the matched items. Never nil.
func (store *MemoryStore[T]) FindItems(filter *query.Filter) []T {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	return arrays.Filter(store.items, func(item T) bool {
		return filter.Matches(item)
	})
}

// Description:
//
//	Returns the item with the given id.
//
// Parameters:
//
//	id The id to look up.
//
// Returns:
//
//	A copy of the item, or ErrItemNotFound.
func (store *MemoryStore[T]) FindItem(id int) (T, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	index := store.indexOf(id)
	if index < 0 {
		var zero T
		return zero, ErrItemNotFound
	}

	return store.items[index], nil
}

// Description:
//
//	Allocates the next id and appends the item built for it.
//
// Parameters:
//
//	build Builds the item for the allocated id.
//
// Returns:
//
//	The stored item.
func (store *MemoryStore[T]) CreateItem(build func(id int) T) T {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	item := build(store.nextID)
	store.nextID++
	store.items = append(store.items, item)

	return item
}

// Description:
//
//	Replaces the item with the given id by the result of update.
//	Lookup, update and write-back happen under one lock. If update
//	returns an error the stored item is left untouched. The update
//	must keep the id of the item.
//
// Parameters:
//
//	id 		The id of the item to update.
//	update 	Receives a copy of the current item and returns its new state.
//
// Returns:
//
//	The updated item, ErrItemNotFound, or the error returned by update.
func (store *MemoryStore[T]) UpdateItem(id int, update func(item T) (T, error)) (T, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	var zero T

	index := store.indexOf(id)
	if index < 0 {
		return zero, ErrItemNotFound
	}

	updated, err := update(store.items[index])
	if err != nil {
		return zero, err
	}

	store.items[index] = updated
	return updated, nil
}

// Description:
//
//	Removes the item with the given id. Remaining items keep their ids
//	and their order.
//
// Parameters:
//
//	id The id of the item to remove.
//
// Returns:
//
//	The number of removed items, either 0 or 1.
func (store *MemoryStore[T]) DeleteItem(id int) int {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	index := store.indexOf(id)
	if index < 0 {
		return 0
	}

	store.items = append(store.items[:index], store.items[index+1:]...)
	return 1
}

// Description:
//
//	Counts the stored items.
//
// Returns:
//
//	The number of stored items.
func (store *MemoryStore[T]) Count() int {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	return len(store.items)
}

// indexOf must be called with the mutex held.
func (store *MemoryStore[T]) indexOf(id int) int {
	return arrays.FindIndex(store.items, func(item T) bool {
		return item.Identity() == id
	})
}
