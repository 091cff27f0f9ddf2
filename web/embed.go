package web

import (
	"embed"
	"io/fs"
)

// FS holds the site's static assets. The wasm bundle and wasm_exec.js are
// build outputs and are served from STATIC_DIR instead.
//
//go:embed static/*
var FS embed.FS

// Static returns the assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
