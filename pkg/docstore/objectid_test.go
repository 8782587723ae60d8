package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid lowercase", "507f1f77bcf86cd799439011", true},
		{"valid uppercase", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd7994390", false},
		{"too long", "507f1f77bcf86cd79943901122", false},
		{"non-hex", "507f1f77bcf86cd79943901z", false},
		{"empty", "", false},
		{"free text", "not-an-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidID(tt.id))
		})
	}
}

func TestParseID(t *testing.T) {
	oid, err := ParseID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())

	_, err = ParseID("bogus")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestFormatIDRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := ParseID(FormatID(oid))
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)
}
