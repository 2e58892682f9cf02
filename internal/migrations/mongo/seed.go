package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	settingsrepo "carhire/internal/settings/repository"
	settingsservice "carhire/internal/settings/service"
	"carhire/pkg/logger"
	"carhire/pkg/model"
)

// seedSettings inserts the default settings documents. Existing documents
// are left untouched.
func seedSettings(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	seeds := map[string]any{
		settingsrepo.PricingCollectionName: settingsservice.DefaultPricing(),
		settingsrepo.WebsiteCollectionName: settingsservice.DefaultWebsite(),
	}

	for name, defaults := range seeds {
		doc, err := seedDocument(defaults)
		if err != nil {
			return fmt.Errorf("failed to encode %s defaults: %w", name, err)
		}

		res, err := db.Collection(name).UpdateOne(ctx,
			bson.M{"_id": model.SettingsDocumentID},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
		if res.UpsertedCount > 0 {
			log.Info("Seeded default settings", "collection", name)
		}
	}
	return nil
}

func seedDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
