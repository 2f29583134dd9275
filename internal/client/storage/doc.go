// Package storage persists the client session (bearer token and the last
// authenticated user) in a local SQLite database.
//
// The database plays the role browser local storage plays for a web client:
// it is the only durable client-side state. The schema is managed by goose
// migrations embedded in the binary (see InitDatabase).
package storage
