// Package store defines the portfolio data model and the persistence
// interfaces the HTTP layer depends on.
//
// Entities:
//   - AboutMe and ContactInfo are singletons keyed by AboutMeID and
//     ContactInfoID. They are written with an upsert and never deleted.
//   - ContactMessage, Education, Project and Skill are collections keyed by
//     server-assigned time-ordered ids.
//   - SkillItem rows belong to exactly one Skill and are replaced as a set.
//
// Implementations return errors wrapping ErrNotFound, ErrValidation or
// ErrConflict so callers can classify failures with errors.Is. Anything else
// is an internal failure.
//
// The gormstore subpackage provides the SQL implementation.
package store
