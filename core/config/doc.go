// Package config provides configuration management for the EoX synchronizer.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Default values are declared on the struct
// fields through the `default` tag and registered recursively.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: S3/MinIO settings for the raw payload archive
//   - Log: logging level and format
//   - Cisco: OAuth2 token endpoint, API base URL, credentials, rate limit
//   - EoX: synchronization toggles, queries and blacklist
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.EoX.APIQueries)
package config
