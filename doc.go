// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the poll site server.

The poll site lists published questions, lets visitors vote for one of a
question's choices, and shows the results. Pages are server-rendered HTML.

# Starting the Server

With SQLite (the default):

	DATABASE_URL=polls.db go run .

With PostgreSQL:

	go run . -t postgres -d "postgres://..."

Settings can also live in a .env file next to the binary (see -env).

# Configuration

  - DATABASE_URL (-d): connection string (required)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): Server port (default: 3318)
  - SEED_FILE (-seed): JSON questions to insert at startup

# Architecture

  - handlers: HTTP request handlers returning tagged results
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging with request ids
  - store: question and choice queries, atomic vote increment
  - templates: embedded HTML pages
  - models: domain and page types
  - seed: fixture loading
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
