package validators

import "go.mongodb.org/mongo-driver/bson"

const calendarDatePattern = `^\d{4}-\d{2}-\d{2}$`

var CarValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"slug",
			"name",
			"category",
			"pricePerDay",
			"available",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"slug": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"pattern":   `^[a-z0-9]+(-[a-z0-9]+)*$`,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"category": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"images": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"pricePerDay": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"seats": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  100,
			},

			"doors": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  10,
			},

			"available": bson.M{
				"bsonType": "bool",
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
