// Package gormstore implements store.Store on top of gorm.
//
// Two dialects are supported: SQLite (pure Go, the default and the one used by
// tests) and PostgreSQL via pgx. The schema is created with AutoMigrate.
//
// Every call derives a context bounded by the configured query timeout, and
// driver errors are translated into the store sentinels:
//
//	unique violation                   -> store.ErrConflict
//	foreign key, not-null, bad value   -> store.ErrValidation
//	record not found                   -> store.ErrNotFound
package gormstore
