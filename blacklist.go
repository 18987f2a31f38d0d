// Package blacklist answers "is this URL blacklisted?" with a two-tier
// membership test: a probabilistic filter that rejects most unknown URLs
// without touching storage, backed by an exact set that is the source of
// truth.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., bloom/, sqlite/, redis/, tcp/).
package blacklist
