// Package store provides the SQLite-backed persistence layer for the school
// equipment inventory.
//
// The store owns exactly one database connection and two relations:
//   - Equipment: assets keyed by a globally unique inventory_tag
//   - Rooms: static reference data, seeded once when the relation is created
//
// # Critical Patterns
//
// Bound parameters only:
//   - Every statement that carries caller data uses ? placeholders
//   - Quotes and LIKE wildcards in names, tags or search terms are data
//
// Presence-based schema:
//   - InitializeSchema checks each relation in sqlite_master and creates the
//     missing ones; there is no version number
//   - Setup is not transactional, so a failed run leaves the schema in an
//     unknown state and must be re-run before further use
//
// Typed failures:
//   - Every failure is a *Error carrying a Kind (connection, statement,
//     constraint, not found); errors.Is works against ErrConnection,
//     ErrStatement, ErrConstraint and ErrNotFound
//   - Update and delete report ErrNotFound when no row matched the tag
//
// Text normalisation:
//   - Values are stored exactly as given; tags compare byte for byte
//   - Search compares the NFC forms of term and column (the nfc() SQL
//     function registered on every connection), so composed and decomposed
//     spellings of the same name match
//
// # Database Configuration
//
//   - One open connection (SetMaxOpenConns(1)): statements are serialised
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Every open, statement failure and close is recorded on the audit log.
package store
