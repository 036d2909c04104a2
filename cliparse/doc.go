// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is built once in main and handed to the router and handlers.
Nothing else in the server reads the environment.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Postgres connection string or SQLite file DSN (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - EnvFile: dotenv file loaded before the environment is read (default: .env)
  - SeedFile: optional JSON file of questions inserted at startup
  - ListLimit: number of questions on the index page (always 5)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_FILE     → -seed

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.
*/
package cliparse
