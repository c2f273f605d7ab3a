// Package storage is the persistence engine: it owns the single JSON document
// on disk and the in-memory copy every repository works against.
//
// All mutations go through Engine.Update, which holds one lock for the whole
// read-validate-mutate-persist sequence and writes the file atomically
// (temp file, fsync, rename) before returning.
package storage
