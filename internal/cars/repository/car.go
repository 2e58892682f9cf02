package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	carserrors "carhire/internal/cars/errors"
	"carhire/pkg/config"
	mongotx "carhire/pkg/db/mongo"
	"carhire/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "cars"
)

var idRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type mongoCarRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	FindByID(ctx context.Context, id string) (*model.Car, error)
	FindBySlug(ctx context.Context, slug string) (*model.Car, error)
	FindAll(ctx context.Context, filter model.CarFilter) ([]*model.Car, error)
	FindRelated(ctx context.Context, category string, excludeID string, limit int) ([]*model.Car, error)
	Categories(ctx context.Context) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Replace(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id string) error
}

func NewMongoCarRepository(cfg *config.Config) CarRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCarRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// ValidID reports whether id can be a car document _id. Ids are uuids for new
// cars; migrated legacy ids are short url-safe strings.
func ValidID(id string) bool {
	return idRegex.MatchString(id)
}

func (r *mongoCarRepository) Create(ctx context.Context, car *model.Car) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	car.CreatedAt = now
	car.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, car); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return carserrors.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (r *mongoCarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %s", carserrors.ErrInvalidID, id)
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoCarRepository) FindBySlug(ctx context.Context, slug string) (*model.Car, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoCarRepository) findOne(ctx context.Context, filter bson.M) (*model.Car, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var car model.Car
	if err := r.collection.FindOne(ctx, filter).Decode(&car); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, carserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find car: %w", err)
	}
	return &car, nil
}

func (r *mongoCarRepository) FindAll(ctx context.Context, filter model.CarFilter) ([]*model.Car, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(sortFor(filter.Sort))

	cursor, err := r.collection.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := make([]*model.Car, 0)
	if err = cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, nil
}

func (r *mongoCarRepository) FindRelated(ctx context.Context, category string, excludeID string, limit int) ([]*model.Car, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"category": category,
		"_id":      bson.M{"$ne": excludeID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find related cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := make([]*model.Car, 0, limit)
	if err = cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode related cars: %w", err)
	}
	return cars, nil
}

func (r *mongoCarRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list car categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	slices.Sort(categories)
	return categories, nil
}

func (r *mongoCarRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check car slug: %w", err)
	}
	return count > 0, nil
}

// Replace writes the whole car document. CreatedAt is kept from the stored
// document by the caller.
func (r *mongoCarRepository) Replace(ctx context.Context, car *model.Car) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if !ValidID(car.ID) {
		return fmt.Errorf("%w: %s", carserrors.ErrInvalidID, car.ID)
	}

	car.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": car.ID}, car)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return carserrors.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update car: %w", err)
	}

	if result.MatchedCount == 0 {
		return carserrors.ErrNotFound
	}
	return nil
}

func (r *mongoCarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if !ValidID(id) {
		return fmt.Errorf("%w: %s", carserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}

	if result.DeletedCount == 0 {
		return carserrors.ErrNotFound
	}
	return nil
}

func buildFilter(f model.CarFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	if f.Category != "" {
		filter["category"] = exactInsensitive(f.Category)
	}
	if f.Transmission != "" {
		filter["transmission"] = exactInsensitive(f.Transmission)
	}
	if f.Seats > 0 {
		filter["seats"] = f.Seats
	}
	if f.Available != nil {
		filter["available"] = *f.Available
	}

	return filter
}

func exactInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

func sortFor(sort string) bson.D {
	switch sort {
	case model.SortSeatsDesc:
		return bson.D{{Key: "seats", Value: -1}, {Key: "name", Value: 1}}
	case model.SortNewest:
		return bson.D{{Key: "year", Value: -1}, {Key: "name", Value: 1}}
	default:
		return bson.D{{Key: "name", Value: 1}}
	}
}
