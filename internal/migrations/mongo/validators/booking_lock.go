package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "carId", "expiresAt"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":       bson.M{"bsonType": "string", "minLength": 1},
			"carId":     bson.M{"bsonType": "string", "minLength": 1},
			"expiresAt": bson.M{"bsonType": "date"},
			"createdAt": bson.M{"bsonType": "date"},
		},
	},
}
