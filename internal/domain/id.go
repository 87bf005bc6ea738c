package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a caller-supplied hex id into a store-native ObjectID.
// Every handler goes through here so a malformed id fails the same way
// everywhere.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", hex, err)
	}
	return id, nil
}
