package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"carId",
			"startDate",
			"endDate",
			"firstName",
			"lastName",
			"email",
			"phone",
			"totalPrice",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"carId": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"carName": bson.M{
				"bsonType": "string",
			},

			"startDate": bson.M{
				"bsonType": "string",
				"pattern":  calendarDatePattern,
			},

			"endDate": bson.M{
				"bsonType": "string",
				"pattern":  calendarDatePattern,
			},

			"firstName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"lastName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType":  "string",
				"minLength": 3,
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 6,
				"maxLength": 32,
			},

			"includeInsurance": bson.M{
				"bsonType": "bool",
			},

			"includeDelivery": bson.M{
				"bsonType": "bool",
			},

			"totalPrice": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"completed",
					"cancelled",
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
