// Package gamedata provides embedded monster definitions and the registry used to spawn them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
