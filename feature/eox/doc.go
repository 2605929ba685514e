// Package eox synchronizes the product catalog with the Cisco EoX API.
//
// # Run
//
// Orchestrator.Run drives one synchronization:
//
//  1. Not eligible: the API is disabled, or the run is periodic while
//     periodic sync is off. Status "task not enabled", no vendor call and
//     no notification.
//  2. No queries configured: succeeds with a status message.
//  3. Connectivity check against the vendor.
//  4. One reconciliation per query, in configured order. The first error
//     fails the run; products written before it stay written.
//  5. One notification with the HTML report or the error message.
//
// # Reconciliation
//
// Each query fetches a fresh token and walks the result pages lazily. For
// every product, in arrival order, the blacklist is checked first, then the
// stored product is created, updated or left unchanged. A product counts as
// changed when a lifecycle field differs or the stored update timestamp is
// older than the vendor's.
//
// # Triggers
//
// Service submits runs to the job runner. Manual runs (POST /eox/sync?force=true)
// ignore the periodic-sync flag; the Scheduler submits periodic runs.
//
// # Archive
//
// When enabled, every raw response page is stored in object storage under
// eox/<query>/<run id>/page-NNNN.json.
package eox
