// Package id generates identifiers for stored portfolio records.
//
// Record ids are UUIDv7 strings. Version 7 embeds a millisecond timestamp in
// the leading bits, so ids created later sort after ids created earlier. List
// queries rely on that to break ties between rows that share a created_at
// value.
package id
