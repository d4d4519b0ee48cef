// Package web embeds the static pages shipped with the server binary.
package web

import "embed"

// Static holds the landing and not-found pages.
//
//go:embed static
var Static embed.FS
