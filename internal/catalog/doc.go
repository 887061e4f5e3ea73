// Package catalog builds and holds the in-memory show/episode index of a
// TV library.
//
// A scan walks the library root for .nfo descriptors, parses them via the
// nfo package, resolves each episode's video and thumbnail through a
// layered matching strategy (sibling file, stem search, fuzzy normalized
// comparison), and groups the results into shows keyed by truncated
// content hashes. The Cache wrapper memoizes one scan per process; the
// only refresh mechanism is a restart (or the test-only Reset).
package catalog
