package checks

import (
	"fmt"
	"sort"

	"eox-sync/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of a database schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the required columns a table lacks.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that every table holds its required columns.
// Inspection failures are recorded per table and do not stop the check.
func CheckSchema(db *gorm.DB, required map[string][]string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(required)),
		Errors:  []string{},
	}

	tables := make([]string, 0, len(required))
	for name := range required {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, required[table])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: missing, Status: "ok"}
		if len(missing) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
