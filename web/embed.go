// Package web holds the static menu page and its assets, compiled into the
// binary so the service deploys as a single file.
package web

import "embed"

//go:embed index.html app.js styles.css
var Assets embed.FS
