// Package types defines the Contact record, the undo Action variants,
// the category and search-field vocabulary, and standard errors for the
// Rolodex record store.
package types
