package reconcile

import "context"

// Adapter defines the model-specific side of a reconciliation.
// Each adapter implements how to key, look up and compare one kind of
// record (e.g., products) against the incoming source items.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "products").
	Name() string

	// ExtractKey returns the entity key of a source item.
	// An empty key means the item cannot be reconciled and is ignored.
	ExtractKey(item SourceItem) string

	// Lookup fetches the stored entity for key. It returns nil when the
	// entity does not exist.
	Lookup(ctx context.Context, key string) (DBItem, error)

	// CompareFields compares the stored entity with the source item and
	// returns a list of mismatch descriptions. Each string should include
	// the field label and both values (e.g., "end_of_sale_date: src=2017-01-01 db=<nil>").
	// Both items are guaranteed to be non-nil when this is called.
	CompareFields(dbItem DBItem, item SourceItem) []string
}

// Mutator applies the planned changes of an adapter.
type Mutator interface {
	// Create stores a new entity built from the source item.
	Create(ctx context.Context, item SourceItem) error

	// Update overwrites the stored entity with the source item.
	Update(ctx context.Context, dbItem DBItem, item SourceItem) error
}

// Filter excludes keys from mutation. Excluded items are still reported.
type Filter interface {
	Excluded(key string) bool
}

// FilterFunc adapts an ordinary function to a Filter.
type FilterFunc func(key string) bool

// Excluded calls f(key).
func (f FilterFunc) Excluded(key string) bool { return f(key) }

// Source yields the incoming items batch by batch.
type Source interface {
	// Next returns the next batch. A batch with Last set ends the stream.
	Next(ctx context.Context) (*Batch, error)
}
