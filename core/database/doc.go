// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL or SQLite connections from
// the application's configuration. SQLite is used for local runs and tests
// (":memory:" keeps everything in process).
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live schema through the GORM
// migrator, so the same check works on every supported driver. The
// integrity endpoints use them to verify that the product and notification
// tables carry every column the synchronizer writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", []string{"product_id"})
package database
