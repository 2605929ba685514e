// Package ciscoapi is the client for the Cisco EoX (End-of-Life) API.
//
// # Authentication
//
// TokenProvider performs the OAuth2 client-credentials grant against the
// configured token endpoint. A token is requested per synchronization
// query and never cached; concurrent requests share the grant in flight.
//
// # Paging
//
// Client.Pages returns a Pager that fetches the EOXByProductID result one
// page at a time. Pages are requested lazily so a caller can stop early,
// and the last page is detected from the PaginationResponseRecord block.
// Records carrying an EOXError are dropped; a response-level EOXError
// fails the call.
//
// # Errors
//
//   - CredentialsError: the token endpoint rejected the credentials
//   - UnreachableError: the endpoints could not be contacted
//   - CallFailedError: a request reached the vendor without a usable result
//
// # Resilience
//
// Outgoing EoX requests pass through a golang.org/x/time/rate limiter and
// a gobreaker circuit breaker whose state is exported as a Prometheus gauge.
package ciscoapi
