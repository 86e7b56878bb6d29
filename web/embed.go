// Package web embeds the browser till, a single static page that drives
// the shop's JSON API.
package web

import "embed"

//go:embed static/*
var StaticFS embed.FS
