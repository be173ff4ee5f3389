package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/uceva/country-service/internal/validator"
)

const (
	// IDField is the JSON key carrying the country identifier.
	IDField = "id"

	MaxAttributeNameLength = 64
)

// Attributes holds the country's data as field name to scalar value.
type Attributes map[string]interface{}

// Value implements driver.Valuer interface for database storage
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner interface for database retrieval
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = Attributes{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported attributes type %T", value)
	}

	decoded := Attributes{}
	if err := decodeJSON(data, &decoded); err != nil {
		return err
	}
	*a = decoded
	return nil
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsScalar reports whether v can be stored as an attribute value.
func IsScalar(v interface{}) bool {
	switch v.(type) {
	case nil, string, bool, json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// Country is the single entity managed by the service. Its id is assigned by the
// database; everything else the client sends is kept in Attributes.
type Country struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Attributes Attributes `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// HasID reports whether the country was persisted before.
func (c *Country) HasID() bool {
	return c.ID > 0
}

// MarshalJSON renders the attributes flat, next to the id.
func (c Country) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Attributes)+1)
	for k, v := range c.Attributes {
		out[k] = v
	}
	out[IDField] = c.ID
	return json.Marshal(out)
}

// UnmarshalJSON reads a flat JSON object. The id key is optional; every other key is
// kept verbatim as an attribute.
func (c *Country) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return ErrInvalidCountryBody
	}

	id, err := parseID(raw[IDField])
	if err != nil {
		return err
	}
	delete(raw, IDField)

	c.ID = id
	c.Attributes = Attributes(raw)
	return nil
}

// Validate checks attribute names and values, recording failures on v.
func (c *Country) Validate(v *validator.Validator) bool {
	for _, key := range c.Attributes.Keys() {
		if !validator.NotBlank(key) {
			v.AddError("attributes", "attribute names must not be blank")
			continue
		}
		v.Check(validator.NotIn(key, IDField), key, "is reserved")
		v.Check(validator.MaxRunes(key, MaxAttributeNameLength),
			key, fmt.Sprintf("must not be more than %d characters", MaxAttributeNameLength))
		v.Check(IsScalar(c.Attributes[key]), key, "must be a string, number, boolean or null")
	}
	return v.Valid()
}

func parseID(v interface{}) (int64, error) {
	switch id := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		n, err := id.Int64()
		if err != nil || n < 0 {
			return 0, ErrInvalidCountryID
		}
		return n, nil
	default:
		return 0, ErrInvalidCountryID
	}
}

func decodeJSON(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(target)
}
