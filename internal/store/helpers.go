package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type rowScanner interface {
	Scan(dest ...any) error
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// nullableJSON encodes value, storing NULL for nil or empty collections.
func nullableJSON(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	switch string(data) {
	case "null", "[]", "{}":
		return nil, nil
	}
	return string(data), nil
}

func decodeJSON(raw sql.NullString, dest any, column string) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw.String), dest); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

func float64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
