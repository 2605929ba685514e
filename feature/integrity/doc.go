// Package integrity provides system health checks.
//
// Unlike the 'eox' package which reconciles lifecycle data, this package
// validates the infrastructure the synchronization depends on.
//
// # Checks Provided
//
//   - Database: Checks that the products, product_migration_options and
//     notification_messages tables hold every column the synchronization writes.
//   - Storage: Checks that the payload archive bucket exists.
//   - API: Requests a token and pings the Cisco EoX API.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/database : Runs the schema check.
//   - GET /integrity/storage : Runs the bucket check (supports ?fix=true).
//   - GET /integrity/api : Runs the connectivity check.
package integrity
