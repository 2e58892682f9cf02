package model

const (
	QuoteModeQuick   = "quick"
	QuoteModeBooking = "booking"
)

type QuoteRequest struct {
	CarID            string `json:"carId" validate:"required"`
	StartDate        string `json:"startDate" validate:"required,calendar_date"`
	EndDate          string `json:"endDate" validate:"required,calendar_date"`
	IncludeInsurance bool   `json:"includeInsurance"`
	IncludeDelivery  bool   `json:"includeDelivery"`
	Mode             string `json:"mode" validate:"omitempty,oneof=quick booking"`
}

type Quote struct {
	Days          int     `json:"days"`
	RequestedDays int     `json:"requestedDays"`
	Clamped       bool    `json:"clamped"`
	Base          float64 `json:"base"`
	Insurance     float64 `json:"insurance"`
	Delivery      float64 `json:"delivery"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Valid         bool    `json:"valid"`
}
