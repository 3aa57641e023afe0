// Package kv is the local key-value store behind the MeetIn client: string
// values by string key, persisted across restarts.
//
// # Backends
//
//   - SQLiteStore: table metadata(key, value) over a dbx.DBTX. Transact runs
//     several writes inside one transaction.
//   - MemoryStore: process-local map, for tests and the "memory" driver.
//   - RedisStore: go-redis client, keys namespaced with a prefix.
//
// All backends report a missing key as ErrNotFound and treat removing a
// missing key as success.
//
// Use Atomically to run a group of writes in one transaction where the
// backend supports it and sequentially otherwise.
package kv
