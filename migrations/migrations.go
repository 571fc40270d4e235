// Package migrations embeds the SQL schema files for each supported database.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
