package postgres

import "embed"

// MigrationsFS embeds the SQL schema migrations so the binary can apply
// them at startup without access to the source tree.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
