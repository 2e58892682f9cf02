package model

import "time"

const SettingsDocumentID = "default"

type PricingSettings struct {
	InsuranceRatePerDay float64   `json:"insuranceRatePerDay" bson:"insuranceRatePerDay" validate:"min=0"`
	DeliveryFlatRate    float64   `json:"deliveryFlatRate" bson:"deliveryFlatRate" validate:"min=0"`
	MinimumRentalDays   int       `json:"minimumRentalDays" bson:"minimumRentalDays" validate:"min=1"`
	MaximumRentalDays   int       `json:"maximumRentalDays" bson:"maximumRentalDays" validate:"min=1"`
	TaxRate             float64   `json:"taxRate" bson:"taxRate" validate:"min=0,max=100"`
	EnableInsurance     bool      `json:"enableInsurance" bson:"enableInsurance"`
	EnableDelivery      bool      `json:"enableDelivery" bson:"enableDelivery"`
	EnableTax           bool      `json:"enableTax" bson:"enableTax"`
	UpdatedAt           time.Time `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

type Testimonial struct {
	Name     string `json:"name" bson:"name" validate:"required,max=100"`
	Location string `json:"location" bson:"location" validate:"max=100"`
	Quote    string `json:"quote" bson:"quote" validate:"required,max=1000"`
	Rating   int    `json:"rating" bson:"rating" validate:"min=1,max=5"`
}

type Stat struct {
	Label string `json:"label" bson:"label" validate:"required,max=50"`
	Value string `json:"value" bson:"value" validate:"required,max=20"`
}

type WebsiteSettings struct {
	WebsiteName string `json:"websiteName" bson:"websiteName"`
	Logo        string `json:"logo" bson:"logo"`
	Favicon     string `json:"favicon" bson:"favicon"`
	CompanyName string `json:"companyName" bson:"companyName"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Address     string `json:"address" bson:"address"`
	Description string `json:"description" bson:"description"`

	FacebookURL  string `json:"facebookUrl" bson:"facebookUrl"`
	XURL         string `json:"xUrl" bson:"xUrl"`
	InstagramURL string `json:"instagramUrl" bson:"instagramUrl"`
	LinkedinURL  string `json:"linkedinUrl" bson:"linkedinUrl"`

	MetaDescription string `json:"metaDescription" bson:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords" bson:"metaKeywords"`

	HeroTitle         string `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle      string `json:"heroSubtitle" bson:"heroSubtitle"`
	HeroImage         string `json:"heroImage" bson:"heroImage"`
	HeroButtonText    string `json:"heroButtonText" bson:"heroButtonText"`
	HeroButtonLink    string `json:"heroButtonLink" bson:"heroButtonLink"`
	HeroLearnMoreText string `json:"heroLearnMoreText" bson:"heroLearnMoreText"`
	HeroLearnMoreLink string `json:"heroLearnMoreLink" bson:"heroLearnMoreLink"`

	Testimonials       []Testimonial `json:"testimonials" bson:"testimonials"`
	Stats              []Stat        `json:"stats" bson:"stats"`
	TermsAndConditions string        `json:"termsAndConditions" bson:"termsAndConditions"`

	UpdatedAt time.Time `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

// WebsiteSettingsUpdate is the admin save payload. Branding fields are always
// written, social and meta fields only when non-blank, and pointer fields
// only when present in the request.
type WebsiteSettingsUpdate struct {
	WebsiteName string `json:"websiteName" validate:"max=200"`
	Logo        string `json:"logo" validate:"image_ref"`
	Favicon     string `json:"favicon" validate:"image_ref"`
	CompanyName string `json:"companyName" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Address     string `json:"address" validate:"max=500"`
	Description string `json:"description" validate:"max=2000"`

	FacebookURL  string `json:"facebookUrl" validate:"omitempty,url"`
	XURL         string `json:"xUrl" validate:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" validate:"omitempty,url"`
	LinkedinURL  string `json:"linkedinUrl" validate:"omitempty,url"`

	MetaDescription string `json:"metaDescription" validate:"max=500"`
	MetaKeywords    string `json:"metaKeywords" validate:"max=1000"`

	HeroTitle         *string `json:"heroTitle,omitempty" validate:"omitempty,max=200"`
	HeroSubtitle      *string `json:"heroSubtitle,omitempty" validate:"omitempty,max=500"`
	HeroImage         *string `json:"heroImage,omitempty" validate:"omitempty,image_ref"`
	HeroButtonText    *string `json:"heroButtonText,omitempty" validate:"omitempty,max=50"`
	HeroButtonLink    *string `json:"heroButtonLink,omitempty" validate:"omitempty,max=500"`
	HeroLearnMoreText *string `json:"heroLearnMoreText,omitempty" validate:"omitempty,max=50"`
	HeroLearnMoreLink *string `json:"heroLearnMoreLink,omitempty" validate:"omitempty,max=500"`

	Testimonials       *[]Testimonial `json:"testimonials,omitempty" validate:"omitempty,max=12,dive"`
	Stats              *[]Stat        `json:"stats,omitempty" validate:"omitempty,max=8,dive"`
	TermsAndConditions *string        `json:"termsAndConditions,omitempty"`
}
