package migrations

import "embed"

// FS contains embedded SQLite migrations for the ledger.
//
//go:embed *.sql
var FS embed.FS
