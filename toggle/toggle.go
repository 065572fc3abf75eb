// Package toggle flips the presence of a like or subscription edge.
// Deleting first and treating a duplicate-key insert as already-present
// keeps concurrent toggles from ever producing two edges for the same
// (actor, target) pair; the unique indexes in database.EnsureIndexes
// back that up at the store level.
package toggle

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EdgeStore is the slice of a collection the engine needs.
type EdgeStore interface {
	// DeleteEdge removes the edge matching filter, reporting whether
	// anything was removed.
	DeleteEdge(ctx context.Context, filter interface{}) (bool, error)
	// InsertEdge stores a new edge. Inserting an edge that already
	// exists surfaces as a duplicate-key error.
	InsertEdge(ctx context.Context, edge interface{}) error
}

// State reports which way a toggle went.
type State string

const (
	Added   State = "added"
	Removed State = "removed"
)

// Toggle removes the edge matching filter if it exists, otherwise
// inserts edge. Two consecutive calls restore the original state.
func Toggle(ctx context.Context, store EdgeStore, filter, edge interface{}) (State, error) {
	deleted, err := store.DeleteEdge(ctx, filter)
	if err != nil {
		return "", err
	}
	if deleted {
		return Removed, nil
	}

	if err := store.InsertEdge(ctx, edge); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with an identical insert; the edge exists,
			// which is the state this call wanted.
			return Added, nil
		}
		return "", err
	}
	return Added, nil
}

// CollectionStore adapts a mongo collection to EdgeStore.
type CollectionStore struct {
	Coll *mongo.Collection
}

func (s CollectionStore) DeleteEdge(ctx context.Context, filter interface{}) (bool, error) {
	res, err := s.Coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s CollectionStore) InsertEdge(ctx context.Context, edge interface{}) error {
	_, err := s.Coll.InsertOne(ctx, edge)
	return err
}
