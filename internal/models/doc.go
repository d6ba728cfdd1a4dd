// Package models defines the domain models for the café menu backend.
//
// The menu is deliberately loose: items carry whatever the admin client
// sends, categories are bare labels, and nothing cross-checks the two. The
// only field the server owns is MenuItem.ID, assigned by the store at
// creation time. ItemPatch models the partial-update bodies the admin page
// sends on both create and update.
package models
