package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingEventValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "type", "bookingId", "occurredAt"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "string", "minLength": 1},
			"type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"booking.created",
					"booking.status_changed",
					"booking.deleted",
				},
			},
			"bookingId":  bson.M{"bsonType": "string", "minLength": 1},
			"carId":      bson.M{"bsonType": "string"},
			"occurredAt": bson.M{"bsonType": "date"},
		},
	},
}
