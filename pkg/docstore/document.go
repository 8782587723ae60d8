package docstore

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// marshalDocument flattens an input model into a generic bson document ready
// for insertion or a $set merge. The store owns id assignment, so any "_id"
// the caller supplied is dropped, as are fields that serialized to nil.
// Remaining values go through reference coercion.
func marshalDocument(input any) (bson.M, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}

	delete(doc, "_id")
	for key, value := range doc {
		if value == nil {
			delete(doc, key)
			continue
		}
		doc[key] = coerceDocumentRefs(value)
	}
	return doc, nil
}

// coerceDocumentRefs converts string values that parse as document ids into
// native ObjectIDs, recursing into arrays, so that cross-collection
// references are stored in the native form the aggregation queries match on.
//
// The check is purely syntactic: a free-text field whose value happens to be
// a 24-character hex string gets coerced too. Fields that must stay plain
// strings should simply not hold id-shaped values.
func coerceDocumentRefs(value any) any {
	switch v := value.(type) {
	case string:
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			return oid
		}
		return v
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, elem := range v {
			out[i] = coerceDocumentRefs(elem)
		}
		return out
	default:
		return value
	}
}
