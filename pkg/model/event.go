package model

import "time"

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"

	EventCarCreated    = "car.created"
	EventCarUpdated    = "car.updated"
	EventCarDuplicated = "car.duplicated"
	EventCarDeleted    = "car.deleted"
)

// BookingEvent is both the Kafka payload on the bookings topic and the
// document stored in booking_events by the audit worker.
type BookingEvent struct {
	ID         string    `json:"id" bson:"_id"`
	Type       string    `json:"type" bson:"type"`
	BookingID  string    `json:"bookingId" bson:"bookingId"`
	CarID      string    `json:"carId" bson:"carId"`
	Status     string    `json:"status,omitempty" bson:"status,omitempty"`
	PrevStatus string    `json:"prevStatus,omitempty" bson:"prevStatus,omitempty"`
	TotalPrice float64   `json:"totalPrice,omitempty" bson:"totalPrice,omitempty"`
	OccurredAt time.Time `json:"occurredAt" bson:"occurredAt"`
}

type CarEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	CarID      string    `json:"carId"`
	Slug       string    `json:"slug"`
	SourceID   string    `json:"sourceId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
