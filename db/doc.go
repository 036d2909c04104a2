// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the driver from Config.DatabaseType:

  - postgres: github.com/lib/pq, DATABASE_URL is a postgres:// URL
  - sqlite: modernc.org/sqlite, DATABASE_URL is a file path or file: URI

SQLite connections get foreign_keys and busy_timeout pragmas and the pool is
limited to one connection.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: prompt text and publication date (unix milliseconds)
  - choice: answer text and vote counter (never negative)

# Relationships

	question 1──* choice

Deleting a question deletes its choices (ON DELETE CASCADE).
*/
package db
