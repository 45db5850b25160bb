// Package taxipark embeds the SQL migrations shipped with the binary.
package taxipark

import "embed"

// Migrations holds the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
