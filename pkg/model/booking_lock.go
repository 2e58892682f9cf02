package model

import "time"

// BookingLock is a short-lived advisory lock on a car. The unique _id makes
// a second concurrent insert fail with a duplicate key error.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	CarID     string    `bson:"carId" json:"carId"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
