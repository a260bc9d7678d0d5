// Package web serves the password gate and upload pages.
package web

import "embed"

// Templates holds the HTML pages shipped with the binary.
//
//go:embed templates/*.html
var Templates embed.FS
