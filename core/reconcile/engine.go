package reconcile

import (
	"context"
	"fmt"
)

// Run streams the source through the adapter, deciding and applying one
// action per item in arrival order. Every batch is fully processed before
// the next one is requested.
//
// On error the result holds the actions applied so far. Applied mutations
// are not rolled back.
func Run(ctx context.Context, spec *Spec, source Source) (*Result, error) {
	mutator, ok := spec.Adapter.(Mutator)
	if !ok && !spec.Options.DryRun {
		return nil, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	result := &Result{Actions: []Action{}}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := source.Next(ctx)
		if err != nil {
			return result, err
		}

		for _, item := range batch.Items {
			action, dbItem, err := Decide(ctx, spec, item)
			if err != nil {
				return result, err
			}
			if action == nil {
				continue
			}

			if !spec.Options.DryRun {
				if err := apply(ctx, mutator, *action, dbItem, item); err != nil {
					return result, err
				}
			}
			result.add(*action)
		}

		if batch.Last {
			return result, nil
		}
	}
}

// Decide determines the action for a single source item without applying
// it. A nil action means the item has no key and is ignored.
func Decide(ctx context.Context, spec *Spec, item SourceItem) (*Action, DBItem, error) {
	adapter := spec.Adapter

	key := adapter.ExtractKey(item)
	if key == "" {
		return nil, nil, nil
	}

	if spec.Filter != nil && spec.Filter.Excluded(key) {
		return &Action{Type: ActionSkippedBlacklisted, Key: key}, nil, nil
	}

	dbItem, err := adapter.Lookup(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up %s %s: %w", adapter.Name(), key, err)
	}

	if dbItem == nil {
		if !spec.Options.CreateMissing {
			return &Action{Type: ActionSkippedMissing, Key: key}, nil, nil
		}
		return &Action{Type: ActionCreated, Key: key}, nil, nil
	}

	mismatch := adapter.CompareFields(dbItem, item)
	if len(mismatch) == 0 {
		return &Action{Type: ActionSkippedUnchanged, Key: key}, dbItem, nil
	}
	return &Action{Type: ActionUpdated, Key: key, Mismatch: mismatch}, dbItem, nil
}

func apply(ctx context.Context, mutator Mutator, action Action, dbItem DBItem, item SourceItem) error {
	switch action.Type {
	case ActionCreated:
		if err := mutator.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create %s: %w", action.Key, err)
		}
	case ActionUpdated:
		if err := mutator.Update(ctx, dbItem, item); err != nil {
			return fmt.Errorf("failed to update %s: %w", action.Key, err)
		}
	}
	return nil
}

// SliceSource serves a fixed list of batches in order.
type SliceSource struct {
	batches [][]SourceItem
	next    int
}

// NewSliceSource returns a Source over the given batches.
func NewSliceSource(batches ...[]SourceItem) *SliceSource {
	return &SliceSource{batches: batches}
}

// Next returns the next batch, marking the final one as Last.
func (s *SliceSource) Next(ctx context.Context) (*Batch, error) {
	if s.next >= len(s.batches) {
		return &Batch{Last: true}, nil
	}
	items := s.batches[s.next]
	s.next++
	return &Batch{Items: items, Last: s.next >= len(s.batches)}, nil
}
