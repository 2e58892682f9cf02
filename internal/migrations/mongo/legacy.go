package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"carhire/pkg/logger"
)

// legacyIDField is the application id that imported car documents carried
// next to their storage id. Bookings reference it as carId.
const legacyIDField = "id"

// canonicalCar returns a copy of doc keyed by its legacy id, or false when the
// document is already canonical.
func canonicalCar(doc bson.M) (bson.M, bool) {
	legacy, ok := doc[legacyIDField].(string)
	if !ok || legacy == "" {
		return nil, false
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == legacyIDField {
			continue
		}
		out[k] = v
	}

	if current, ok := doc["_id"].(string); ok && current == legacy {
		return out, true
	}
	out["_id"] = legacy
	return out, true
}

// rewriteLegacyCarIDs moves every car that still has an "id" field onto
// _id = id. _id is immutable, so each one is re-inserted and the old
// document removed.
func rewriteLegacyCarIDs(ctx context.Context, coll *mongo.Collection, log *logger.Logger) error {
	cursor, err := coll.Find(ctx, bson.M{legacyIDField: bson.M{"$exists": true}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	rewritten := 0
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode car: %w", err)
		}

		canonical, ok := canonicalCar(doc)
		if !ok {
			continue
		}

		if canonical["_id"] == doc["_id"] {
			if _, err := coll.UpdateByID(ctx, doc["_id"], bson.M{"$unset": bson.M{legacyIDField: ""}}); err != nil {
				return fmt.Errorf("failed to drop legacy id on %v: %w", doc["_id"], err)
			}
			continue
		}

		if _, err := coll.InsertOne(ctx, canonical); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				log.Warn("Skipping legacy car, canonical id already taken",
					"old_id", doc["_id"],
					"new_id", canonical["_id"],
					"error", err,
				)
				continue
			}
			return fmt.Errorf("failed to insert canonical car %v: %w", canonical["_id"], err)
		}
		if _, err := coll.DeleteOne(ctx, bson.M{"_id": doc["_id"]}); err != nil {
			return fmt.Errorf("failed to remove legacy car %v: %w", doc["_id"], err)
		}
		rewritten++
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	log.Info("Legacy car ids rewritten", "count", rewritten)
	return nil
}
