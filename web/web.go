// Package web holds the embedded HTML templates served by the HTTP
// transport.
package web

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS
