package model

import "time"

type Car struct {
	ID           string    `json:"id" bson:"_id"`
	Slug         string    `json:"slug" bson:"slug" validate:"required,slug"`
	Name         string    `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Category     string    `json:"category" bson:"category" validate:"required,max=100"`
	Description  string    `json:"description" bson:"description" validate:"required"`
	Image        string    `json:"image" bson:"image" validate:"image_ref"`
	Images       []string  `json:"images" bson:"images" validate:"dive,image_ref"`
	PricePerDay  int       `json:"pricePerDay" bson:"pricePerDay" validate:"required,min=1"`
	Seats        int       `json:"seats" bson:"seats" validate:"min=1,max=100"`
	Transmission string    `json:"transmission" bson:"transmission" validate:"required"`
	FuelType     string    `json:"fuelType" bson:"fuelType" validate:"required"`
	Luggage      int       `json:"luggage" bson:"luggage" validate:"min=0"`
	Doors        int       `json:"doors" bson:"doors" validate:"min=1,max=10"`
	Year         int       `json:"year" bson:"year" validate:"min=1900,max=2100"`
	HasGPS       bool      `json:"hasGPS" bson:"hasGPS"`
	HasBluetooth bool      `json:"hasBluetooth" bson:"hasBluetooth"`
	HasAC        bool      `json:"hasAC" bson:"hasAC"`
	HasUSB       bool      `json:"hasUSB" bson:"hasUSB"`
	Available    bool      `json:"available" bson:"available"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CarCreate is the admin payload for a new car. HasAC and Available are
// pointers so an omitted value can default to true.
type CarCreate struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	PricePerDay  int      `json:"pricePerDay"`
	Seats        int      `json:"seats"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Luggage      int      `json:"luggage"`
	Doors        int      `json:"doors"`
	Year         int      `json:"year"`
	HasGPS       bool     `json:"hasGPS"`
	HasBluetooth bool     `json:"hasBluetooth"`
	HasAC        *bool    `json:"hasAC"`
	HasUSB       bool     `json:"hasUSB"`
	Available    *bool    `json:"available"`
}

type CarUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	PricePerDay  *int      `json:"pricePerDay,omitempty"`
	Seats        *int      `json:"seats,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	FuelType     *string   `json:"fuelType,omitempty"`
	Luggage      *int      `json:"luggage,omitempty"`
	Doors        *int      `json:"doors,omitempty"`
	Year         *int      `json:"year,omitempty"`
	HasGPS       *bool     `json:"hasGPS,omitempty"`
	HasBluetooth *bool     `json:"hasBluetooth,omitempty"`
	HasAC        *bool     `json:"hasAC,omitempty"`
	HasUSB       *bool     `json:"hasUSB,omitempty"`
	Available    *bool     `json:"available,omitempty"`
}

const (
	SortRecommended = "recommended"
	SortSeatsDesc   = "seats-desc"
	SortNewest      = "newest"
)

// CarFilter narrows the catalog listing. Zero values mean "no filter".
type CarFilter struct {
	Search       string
	Category     string
	Transmission string
	Seats        int
	Available    *bool
	Sort         string
}
