// Package web holds the page templates and static assets served by devlog.
package web

import "embed"

//? These directories must match config.TemplatesLocalDir and config.StaticLocalDir

//go:embed static/* templates/*
var Content embed.FS
