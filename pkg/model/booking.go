package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var BookingStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

type Booking struct {
	ID               string    `json:"id" bson:"_id"`
	CarID            string    `json:"carId" bson:"carId" validate:"required"`
	CarName          string    `json:"carName" bson:"carName"`
	StartDate        string    `json:"startDate" bson:"startDate" validate:"required,calendar_date"`
	EndDate          string    `json:"endDate" bson:"endDate" validate:"required,calendar_date"`
	FirstName        string    `json:"firstName" bson:"firstName" validate:"required,max=100"`
	LastName         string    `json:"lastName" bson:"lastName" validate:"required,max=100"`
	Email            string    `json:"email" bson:"email" validate:"required,email"`
	Phone            string    `json:"phone" bson:"phone" validate:"required,min=6,max=32"`
	Address          string    `json:"address" bson:"address" validate:"max=500"`
	Notes            string    `json:"notes" bson:"notes" validate:"max=2000"`
	IncludeInsurance bool      `json:"includeInsurance" bson:"includeInsurance"`
	IncludeDelivery  bool      `json:"includeDelivery" bson:"includeDelivery"`
	TotalPrice       float64   `json:"totalPrice" bson:"totalPrice" validate:"min=0"`
	Status           string    `json:"status" bson:"status" validate:"required,booking_status"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

type BookingStatusUpdate struct {
	Status string `json:"status" validate:"required,booking_status"`
}
