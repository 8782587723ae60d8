package docstore

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether s is a well-formed document id
// (a 24-character hex string, 12 bytes).
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// ParseID converts a hex string into a native ObjectID.
// Returns an error wrapping ErrInvalidID if the string is malformed.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return oid, nil
}

// FormatID converts a native ObjectID back to its hex string form.
func FormatID(oid primitive.ObjectID) string {
	return oid.Hex()
}
