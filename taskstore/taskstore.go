// Package taskstore provides the authoritative in-memory collection of
// task records for a project. It supports create, update, soft delete,
// and restore, keeps a mutation journal with inverse commands for undo,
// and can seed itself from (or save itself to) a JSON snapshot.
//
// The store never enforces roles; permission checks are advisory and
// belong to the caller (see the session package). Mutations do require
// an authenticated session so records can be attributed to an actor.
package taskstore
