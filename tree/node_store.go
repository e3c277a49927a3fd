package tree

import "context"

/*
Store is an interface to manage a store where trees can be created,
retrieved, updated and deleted. Trees are stored whole: there are no
partial updates.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Store interface {
	// Create takes the root node of a tree and stores it
	// for the first time in the store, returning the ID
	// generated for it or an error if it cannot be stored.
	Create(ctx context.Context, n *Node) (string, error)
	// Get takes an id and returns the root node of the tree
	// in the store with that id (or nil if it cannot be
	// found) or an error if the store cannot be queried
	Get(ctx context.Context, id string) (*Node, error)
	// Store takes an id and the root node of a tree and
	// replaces the tree with that id in the store. It
	// returns an error if it cannot be performed.
	Store(ctx context.Context, id string, n *Node) error
	// Delete takes an id and deletes the tree with that id
	// from the store. It returns an error if the tree exists
	// but the deletion cannot be performed.
	Delete(ctx context.Context, id string) error
	// Close closes the store, implementations should
	// free any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires).
	Close(ctx context.Context) error
}
