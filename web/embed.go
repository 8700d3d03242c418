// Package web holds the embedded single-page UI shell.
package web

import "embed"

//go:embed static
var Assets embed.FS
