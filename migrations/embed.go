// Package migrations holds the goose SQL migrations of the database schema.
package migrations

import "embed"

// FS contains every *.sql migration, for binaries that ship without the
// source tree.
//
//go:embed *.sql
var FS embed.FS
