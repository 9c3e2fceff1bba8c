// Package store defines the persistence capability interfaces consumed by
// the auth and inventory services, and provides two implementations:
//
//   - Memory: a mutex-guarded in-memory store, the default backend and the
//     one used by tests (the original service ran on an in-memory database).
//   - Database: a GORM-backed store using SQLite for durable deployments.
//
// Both implementations enforce username uniqueness atomically at insert
// time, so concurrent registrations of the same username can never produce
// duplicate records.
package store
