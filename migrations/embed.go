// Package migrations embeds the SQL schema applied by the startup migrator.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
