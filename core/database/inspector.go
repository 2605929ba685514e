package database

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
}

// GetTableColumns retrieves the column definitions for a given table.
// A missing table yields an empty slice.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return []ColumnInfo{}, nil
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(ct.Name()),
			Type:     strings.ToLower(ct.DatabaseTypeName()),
			Nullable: nullable,
		})
	}
	return columns, nil
}

// MissingColumns reports the required columns absent from the table, sorted.
// A missing table reports every required column.
func MissingColumns(db *gorm.DB, tableName string, required []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c.Field] = struct{}{}
	}

	missing := []string{}
	for _, name := range required {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
