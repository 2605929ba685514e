// Package utils provides small helpers shared across packages: loose type
// conversion for query parameters and list splitting for configuration
// strings.
package utils
