package web

import "embed"

// StaticFS embeds the client UI (html/css/js).
//
//go:embed static/*
var StaticFS embed.FS

// TemplatesFS embeds HTML templates used for PDF rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
