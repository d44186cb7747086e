// Package web embeds the browser dashboard client served by the HTTP server.
package web

import "embed"

// StaticFS embeds static assets (html/css/js).
//
//go:embed static/*
var StaticFS embed.FS
