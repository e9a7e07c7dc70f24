package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StringArray stores an ordered list of strings as a JSONB column.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// UUIDSet stores a duplicate-free list of ids as a JSONB column. Order of
// insertion is preserved; membership helpers keep the no-duplicates invariant.
type UUIDSet []uuid.UUID

// Value implements the driver.Valuer interface
func (s UUIDSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *UUIDSet) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Contains reports whether id is a member of the set.
func (s UUIDSet) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id and reports whether the set changed.
func (s *UUIDSet) Add(id uuid.UUID) bool {
	if s.Contains(id) {
		return false
	}
	*s = append(*s, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *UUIDSet) Remove(id uuid.UUID) bool {
	for i, v := range *s {
		if v == id {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// Comment is embedded in a recipe's comments column.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentList stores a recipe's comments as a JSONB column.
type CommentList []Comment

// Value implements the driver.Valuer interface
func (l CommentList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *CommentList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ShoppingItem is embedded in a shopping list's items column.
type ShoppingItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
}

// ItemList stores shopping items as a JSONB column.
type ItemList []ShoppingItem

// Value implements the driver.Valuer interface
func (l ItemList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *ItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}
