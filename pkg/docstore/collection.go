// Package docstore is a generic typed mapping layer over schemaless mongo
// collections. A Collection binds one entity model to one collection and
// handles serialization, id normalization between hex strings and native
// ObjectIDs, and the fail-closed treatment of malformed ids.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrInvalidID marks a malformed document id.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound marks a well-formed id with no matching document.
	ErrNotFound = errors.New("document not found")
)

// Collection is a typed adapter over one mongo collection. It holds no state
// beyond the borrowed collection handle and is safe for concurrent use.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection binds the entity type T to a named collection of db.
func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// Raw exposes the underlying mongo collection for aggregation queries.
func (c *Collection[T]) Raw() *mongo.Collection {
	return c.coll
}

// Create inserts input as a new document and returns the stored record.
// The document is re-read after insert so store-side defaults are reflected
// in the result.
func (c *Collection[T]) Create(ctx context.Context, input any) (*T, error) {
	doc, err := marshalDocument(input)
	if err != nil {
		return nil, err
	}

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", c.coll.Name(), err)
	}

	var created T
	if err := c.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("read back from %s: %w", c.coll.Name(), err)
	}
	return &created, nil
}

// GetByID looks up one document by its hex id. A malformed id is treated as
// "not found" without querying the store; both cases return (nil, nil).
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var found T
	err = c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&found)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find in %s: %w", c.coll.Name(), err)
	}
	return &found, nil
}

// List returns up to limit documents in natural collection order, skipping
// the first skip. A limit of zero or less returns no documents; no total
// count is computed.
func (c *Collection[T]) List(ctx context.Context, skip, limit int64) ([]T, error) {
	// The driver reads a zero limit as "unlimited", not "none".
	if limit <= 0 {
		return []T{}, nil
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.coll.Name(), err)
	}

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.coll.Name(), err)
	}
	return results, nil
}

// Update applies a field-level merge of partial onto the document with the
// given id and returns the resulting record. Fields absent from partial are
// left untouched. A matched document is returned even when the merge changed
// nothing; (nil, nil) means no document matched or the id was malformed.
func (c *Collection[T]) Update(ctx context.Context, id string, partial any) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	doc, err := marshalDocument(partial)
	if err != nil {
		return nil, err
	}
	// An empty partial has nothing to merge; the current document is the
	// result if the id exists. Mongo also rejects an empty $set outright.
	if len(doc) == 0 {
		return c.GetByID(ctx, id)
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", c.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return c.GetByID(ctx, id)
}

// Delete removes the document with the given id. It reports true iff exactly
// one document was removed; a malformed id reports false without querying.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount == 1, nil
}
