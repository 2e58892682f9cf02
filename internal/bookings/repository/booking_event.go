package repository

import (
	"context"
	"fmt"

	"carhire/pkg/config"
	mongotx "carhire/pkg/db/mongo"
	"carhire/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventCollectionName = "booking_events"

// BookingEventRepository stores the audit trail written by the booking-audit
// worker.
type BookingEventRepository interface {
	// Append stores event. Redelivered events with a known id are ignored.
	Append(ctx context.Context, event *model.BookingEvent) error
	FindByBooking(ctx context.Context, bookingID string) ([]*model.BookingEvent, error)
}

type mongoBookingEventRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewBookingEventRepository(cfg *config.Config) BookingEventRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingEventRepository{
		cfg:        cfg,
		collection: db.Collection(EventCollectionName),
	}
}

func (r *mongoBookingEventRepository) Append(ctx context.Context, event *model.BookingEvent) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to store booking event: %w", err)
	}
	return nil
}

func (r *mongoBookingEventRepository) FindByBooking(ctx context.Context, bookingID string) ([]*model.BookingEvent, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "occurredAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find booking events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]*model.BookingEvent, 0)
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode booking events: %w", err)
	}
	return events, nil
}
