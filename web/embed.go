// Package web holds the static frontend served at "/".
package web

import _ "embed"

// IndexHTML is the single-page chat frontend.
//
//go:embed index.html
var IndexHTML []byte
