// Package config provides simple, local-first configuration management for Bigsky.
//
// This package implements a minimal configuration system. All configuration
// is stored locally in the working directory's .bigsky/ directory.
//
// Configuration File Structure:
//
//	.bigsky/
//	├── config.json        # Main configuration (committed to git)
//	├── .gitignore         # Smart defaults for what to ignore
//	├── cities.txt         # City entries added through the app
//	└── logs/              # Debug logs, when enabled
//
// The config.json file contains simple key-value settings:
//
//	{
//	  "counties_file": "MontanaCounties.csv",
//	  "cities_file": ".bigsky/cities.txt",
//	  "debug": false
//	}
//
// Environment Variable Support:
//
// Configuration values can reference environment variables using $VAR or ${VAR} syntax:
//
//	{
//	  "counties_file": "${BIGSKY_DATA}/MontanaCounties.csv"
//	}
//
// The BIGSKY_COUNTIES_FILE, BIGSKY_CITIES_FILE, and BIGSKY_DEBUG variables
// override their file-based counterparts entirely, which pairs well with a
// local .env file.
//
// Design Philosophy:
//
// - Local-first: Everything lives in the working directory
// - Simple: Single JSON file, no complex hierarchies
// - Smart defaults: Works out of the box
// - Git-friendly: Includes sensible .gitignore patterns
// - YAGNI: Only implements what's actually needed
//
// Example usage:
//
//	manager := config.NewManager(".")
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Get()
//	fmt.Println("Counties file:", cfg.CountiesFile)
//
//	// Update a setting
//	manager.Set("debug", "true")
package config
