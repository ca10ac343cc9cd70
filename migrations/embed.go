// Package migrations carries the SQL schema applied by the migration runner.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
