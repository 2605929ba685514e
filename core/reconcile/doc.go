// Package reconcile provides a generic engine for reconciling a stream of
// authoritative source items against stored entities.
//
// # Architecture
//
// 1. Source: yields items batch by batch (e.g., one vendor page at a time).
//    The engine requests a batch only after the previous one is fully
//    processed, so memory stays bounded by one batch.
//
// 2. Adapter: model-specific logic to key an item, look up the stored
//    entity and compare fields. A Mutator implementation applies creates
//    and updates.
//
// 3. Filter: excludes keys from mutation. Excluded items are still
//    reported, as skipped_blacklisted.
//
// # Decision
//
// For every item, in arrival order:
//
//	excluded by filter            -> skipped_blacklisted
//	not stored, creation enabled  -> created
//	not stored, creation disabled -> skipped_missing
//	stored, fields differ         -> updated
//	stored, fields equal          -> skipped_unchanged
//
// # Errors
//
// Run stops at the first error and returns the partial result alongside it.
// Mutations applied before the error stay applied.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter: adapter,
//	    Filter:  blacklist,
//	    Options: reconcile.Options{CreateMissing: true},
//	}
//	result, err := reconcile.Run(ctx, spec, source)
package reconcile
