// Package storage provides the key-value store the wizard persists its
// scenario record to.
//
// Three backends implement KV:
//   - FileKV: one file per key in a directory, written atomically
//     (temp file + rename) with 0600 permissions.
//   - SQLiteKV: a single "kv" table in a SQLite database (pure Go driver,
//     WAL journal), upserted on every Set.
//   - MemoryKV: a map, for tests and throwaway sessions.
//
// The record is always overwritten wholesale; there is no append or diff.
package storage
