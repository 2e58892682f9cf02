package validators

import "go.mongodb.org/mongo-driver/bson"

var PricingSettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,
		"properties": bson.M{
			"insuranceRatePerDay": bson.M{"bsonType": "number", "minimum": 0},
			"deliveryFlatRate":    bson.M{"bsonType": "number", "minimum": 0},
			"minimumRentalDays":   bson.M{"bsonType": []string{"int", "long"}, "minimum": 1},
			"maximumRentalDays":   bson.M{"bsonType": []string{"int", "long"}, "minimum": 1},
			"taxRate":             bson.M{"bsonType": "number", "minimum": 0, "maximum": 100},
			"enableInsurance":     bson.M{"bsonType": "bool"},
			"enableDelivery":      bson.M{"bsonType": "bool"},
			"enableTax":           bson.M{"bsonType": "bool"},
		},
	},
}

var WebsiteSettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,
		"properties": bson.M{
			"websiteName":  bson.M{"bsonType": "string"},
			"testimonials": bson.M{"bsonType": "array"},
			"stats":        bson.M{"bsonType": "array"},
		},
	},
}
