// Package data embeds the static product catalog.
package data

import _ "embed"

//go:embed products.json
var Products []byte
