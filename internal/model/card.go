package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCardTTL is how long a card stays active when no expiry is supplied.
// It is applied in BeforeCreate, so the rest of the application never sets
// expiry itself.
const DefaultCardTTL = 30 * 24 * time.Hour

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Card represents a time-limited promotional listing with optional images.
type Card struct {
	ID               uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	BusinessName     string     `json:"businessName" gorm:"size:255;not null"`
	EmployeeName     string     `json:"employeeName" gorm:"size:255;not null"`
	WebpageURL       string     `json:"webpageUrl,omitempty" gorm:"size:2048"`
	Description      string     `json:"description" gorm:"type:text;not null"`
	CoverImageURL    *string    `json:"coverImageUrl" gorm:"size:2048"`
	ProductImageURLs StringList `json:"productImageUrls" gorm:"type:json"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"index"`
	ExpiresAt        time.Time  `json:"expiresAt" gorm:"index"`
}

// BeforeCreate assigns the UUID and the default expiry before insert.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.ExpiresAt.IsZero() {
		c.ExpiresAt = time.Now().Add(DefaultCardTTL)
	}
	return nil
}
