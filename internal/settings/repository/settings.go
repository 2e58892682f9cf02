package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	settingserrors "carhire/internal/settings/errors"
	"carhire/pkg/config"
	mongotx "carhire/pkg/db/mongo"
	"carhire/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PricingCollectionName = "pricing_settings"
	WebsiteCollectionName = "website_settings"
)

// SettingsRepository reads and writes the singleton settings documents. Reads
// return the raw stored fields so callers can merge them over defaults.
type SettingsRepository interface {
	FindPricing(ctx context.Context) (bson.M, error)
	SavePricing(ctx context.Context, fields bson.M) error
	FindWebsite(ctx context.Context) (bson.M, error)
	SaveWebsite(ctx context.Context, fields bson.M) error
}

type mongoSettingsRepository struct {
	cfg     *config.Config
	pricing *mongo.Collection
	website *mongo.Collection
}

func NewMongoSettingsRepository(cfg *config.Config) SettingsRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSettingsRepository{
		cfg:     cfg,
		pricing: db.Collection(PricingCollectionName),
		website: db.Collection(WebsiteCollectionName),
	}
}

func (r *mongoSettingsRepository) FindPricing(ctx context.Context) (bson.M, error) {
	return r.find(ctx, r.pricing)
}

func (r *mongoSettingsRepository) SavePricing(ctx context.Context, fields bson.M) error {
	return r.upsert(ctx, r.pricing, fields)
}

func (r *mongoSettingsRepository) FindWebsite(ctx context.Context) (bson.M, error) {
	return r.find(ctx, r.website)
}

func (r *mongoSettingsRepository) SaveWebsite(ctx context.Context, fields bson.M) error {
	return r.upsert(ctx, r.website, fields)
}

func (r *mongoSettingsRepository) find(ctx context.Context, collection *mongo.Collection) (bson.M, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc bson.M
	err := collection.FindOne(ctx, bson.M{"_id": model.SettingsDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, settingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", collection.Name(), err)
	}
	delete(doc, "_id")
	return doc, nil
}

// upsert sets only the given fields, leaving any others stored on the
// document untouched.
func (r *mongoSettingsRepository) upsert(ctx context.Context, collection *mongo.Collection, fields bson.M) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC().Truncate(time.Millisecond)

	opts := options.Update().SetUpsert(true)
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": model.SettingsDocumentID}, bson.M{"$set": set}, opts); err != nil {
		return fmt.Errorf("failed to save %s: %w", collection.Name(), err)
	}
	return nil
}
