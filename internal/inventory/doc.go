// Package inventory implements the operator workflows over the catalog:
// add, update, delete, search and list, plus the main menu that dispatches
// between them.
//
// Workflows operate on plain book.Book values through the Catalog
// interface; they never hold a database handle themselves. Every loop is
// bounded by a confirmation gate (see internal/prompt) or ends when input
// is exhausted.
//
// Error policy:
//   - validation failures are printed and the operator is re-prompted
//   - unknown or malformed ids print guidance and offer "Try again?"
//   - an id collision on insert fails that add only
//   - any other catalog error ends the session and is returned to the caller
package inventory
