// Package main is the single-binary entrypoint for ppoom, the local-first
// fatigue companion. Everything lives in one process and one data directory.
package main

import "github.com/ppoom-app/ppoom/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
