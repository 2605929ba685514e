package eox

import (
	"regexp"

	"eox-sync/core/utils"

	"go.uber.org/zap"
)

// Blacklist holds the compiled product id exclusion patterns.
type Blacklist struct {
	patterns []*regexp.Regexp
	invalid  []string
}

// ParseBlacklist compiles the ';' separated patterns of raw. Patterns must
// match the whole product id. Invalid patterns are skipped and logged.
func ParseBlacklist(raw string, logger *zap.Logger) *Blacklist {
	b := &Blacklist{}
	for _, p := range utils.SplitList(raw, ';') {
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			logger.Warn("Ignoring invalid blacklist pattern", zap.String("pattern", p), zap.Error(err))
			b.invalid = append(b.invalid, p)
			continue
		}
		b.patterns = append(b.patterns, re)
	}
	return b
}

// IsBlacklisted reports whether productID matches at least one pattern.
func (b *Blacklist) IsBlacklisted(productID string) bool {
	for _, re := range b.patterns {
		if re.MatchString(productID) {
			return true
		}
	}
	return false
}

// Excluded implements reconcile.Filter.
func (b *Blacklist) Excluded(key string) bool {
	return b.IsBlacklisted(key)
}

// Len returns the number of valid patterns.
func (b *Blacklist) Len() int {
	return len(b.patterns)
}

// Invalid returns the patterns that failed to compile.
func (b *Blacklist) Invalid() []string {
	return b.invalid
}
