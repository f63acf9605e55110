// Package advisor holds assets embedded into the advisor binary.
package advisor

import "embed"

// Migrations contains the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
