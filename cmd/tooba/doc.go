// Package main hosts the tooba CLI entrypoint and command graph.
//
// The Cobra-based command tree covers running the HTTP server, one-shot
// library scans, querying a running server's status endpoint, and
// configuration scaffolding. Configuration resolution happens once per
// invocation so subcommands can focus on their own output.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
