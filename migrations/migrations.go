// Package migrations holds the schema as goose Go migrations. The source files
// are embedded so goose can check that every versioned file is registered.
package migrations

import "embed"

//go:embed *.go
var FS embed.FS
