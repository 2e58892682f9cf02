package service

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// mergeOver shallow-merges the stored fields over defaults: every top-level
// field present in doc replaces the default, the rest keep their default.
func mergeOver[T any](defaults T, doc bson.M) (T, error) {
	base, err := toDocument(defaults)
	if err != nil {
		return defaults, err
	}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		base[k] = v
	}

	raw, err := bson.Marshal(base)
	if err != nil {
		return defaults, fmt.Errorf("failed to encode merged settings: %w", err)
	}
	var merged T
	if err := bson.Unmarshal(raw, &merged); err != nil {
		return defaults, fmt.Errorf("failed to decode merged settings: %w", err)
	}
	return merged, nil
}

func toDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return doc, nil
}
