package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/flighthub/pkg/errors"
)

func All() bson.M {
	return bson.M{}
}

// Newest sorts by field, descending.
func Newest(field string) bson.D {
	return bson.D{{Key: field, Value: -1}}
}

// FilterFunc drains c, keeping the items filterFunc accepts. A nil
// filterFunc keeps everything.
func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	filtered := make([]T, 0)
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
