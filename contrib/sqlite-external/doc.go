// Package sqliteexternal registers the CGO SQLite driver
// (github.com/mattn/go-sqlite3) for builds that want it.
//
// The default build of JuniperHebrew uses the pure Go modernc.org/sqlite
// driver through core/sqlite. Build with the cgo_sqlite tag to switch the
// tokenized-book store to this driver:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/hebrew
//
// Use the CGO driver when ingesting the whole Tanakh repeatedly, where it is
// noticeably faster. Use the default when cross-compiling or shipping a single
// static binary.
package sqliteexternal
