// Package assets embeds the default game resources so the binary runs from
// any working directory.
package assets

import "embed"

//go:embed config.yml
var FS embed.FS
