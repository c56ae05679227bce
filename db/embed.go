// Package db carries the SQL schema and seed data applied by the CLI.
package db

import _ "embed"

//go:embed schema.sql
var Schema string

//go:embed seed.sql
var Seed string
