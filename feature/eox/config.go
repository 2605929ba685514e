package eox

import (
	"time"

	"eox-sync/core/utils"
)

// Config holds the synchronization settings. It is passed to every run
// explicitly; nothing in this package reads ambient configuration.
type Config struct {
	// APIEnabled turns the Cisco EoX integration on.
	APIEnabled bool `mapstructure:"api_enabled" default:"false"`
	// PeriodicSyncEnabled allows scheduled runs. Manual runs ignore it.
	PeriodicSyncEnabled bool `mapstructure:"periodic_sync_enabled" default:"false"`
	// AutoCreateNewProducts stores products returned by the API that are not known yet.
	AutoCreateNewProducts bool `mapstructure:"auto_create_new_products" default:"true"`
	// APIQueries holds the query patterns, separated by ';' or newlines.
	APIQueries string `mapstructure:"api_queries" default:""`
	// ProductBlacklistRegex holds ';' separated regular expressions of ignored product ids.
	ProductBlacklistRegex string `mapstructure:"product_blacklist_regex" default:""`
	// SyncIntervalHours is the period of scheduled runs.
	SyncIntervalHours int `mapstructure:"sync_interval_hours" default:"24"`
	// ArchivePayloads writes every raw response page to object storage.
	ArchivePayloads bool `mapstructure:"archive_payloads" default:"false"`
	// Vendor is the vendor name assigned to created products.
	Vendor string `mapstructure:"vendor" default:"Cisco Systems"`
}

// Queries returns the configured query patterns in order.
func (c Config) Queries() []string {
	return ParseQueries(c.APIQueries)
}

// SyncInterval returns the period of scheduled runs.
func (c Config) SyncInterval() time.Duration {
	if c.SyncIntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.SyncIntervalHours) * time.Hour
}

// ParseQueries splits a query configuration string on ';' and newlines,
// trimming whitespace and dropping empty entries.
func ParseQueries(raw string) []string {
	return utils.SplitList(raw, ';', '\n', '\r')
}
