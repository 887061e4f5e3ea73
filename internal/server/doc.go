// Package server exposes the browsing surface over HTTP.
//
// It serves the rendered HTML pages (home grid, show page, episode player),
// streams raw video and thumbnail files straight from the library, and
// answers a small JSON status endpoint for the CLI. Templates are embedded
// and share one base layout; page lookups resolve against the catalog cache,
// so the library is scanned on the first request and reused afterwards.
//
// Unknown show or episode keys render a not-found page with a 200 status;
// only the raw-file routes speak protocol-level 404s. A flock-based instance
// lock keeps two servers from racing on the same log directory.
package server
