// Package products is the product catalog the EoX synchronization writes to.
//
// A Product carries a product id (unique), a description, the vendor and
// the Cisco lifecycle dates. Migration options record replacement
// recommendations, at most one per product and migration source.
//
// # Endpoints
//
//   - GET /products: paged listing ordered by product id
//   - GET /products/:id: one product with its migration options
package products
