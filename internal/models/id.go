package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EntityID identifies users, projects and tasks. IDs cross the wire as
// strings, so equality normalizes the representation before comparing.
type EntityID string

// NewEntityID generates a fresh random identifier.
func NewEntityID() EntityID {
	return EntityID(uuid.NewString())
}

func (id EntityID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset.
func (id EntityID) IsZero() bool {
	return id == ""
}

// Equal compares two ids after normalization.
func (id EntityID) Equal(other EntityID) bool {
	return normalizeID(string(id)) == normalizeID(string(other))
}

func normalizeID(s string) string {
	s = strings.TrimSpace(s)
	if u, err := uuid.Parse(s); err == nil {
		return u.String()
	}
	return s
}

// EntityIDList is stored as a JSON-encoded column.
type EntityIDList []EntityID

// Contains reports whether the list holds the given id.
func (l EntityIDList) Contains(id EntityID) bool {
	for _, candidate := range l {
		if candidate.Equal(id) {
			return true
		}
	}
	return false
}

// Value serializes the list for storage. A nil list is stored as an
// empty JSON array so reads never see NULL.
func (l EntityIDList) Value() (driver.Value, error) {
	if l == nil {
		l = EntityIDList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan deserializes the list from storage.
func (l *EntityIDList) Scan(value interface{}) error {
	if value == nil {
		*l = EntityIDList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type %T for EntityIDList", value)
	}
}
