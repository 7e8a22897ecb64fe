package domain

import (
	"regexp"
	"time"
)

// mobile numbers are exactly 8 digits.
var mobileExp = regexp.MustCompile(`^\d{8}$`)

// IsValidMobile reports whether mobile matches the fixed 8-digit format.
func IsValidMobile(mobile string) bool {
	return mobileExp.MatchString(mobile)
}

// Customer is a buyer identity, looked up by mobile number as natural key.
// The directory is shared across admins.
type Customer struct {
	ID        uint      `json:"id"`
	Mobile    string    `json:"mobile"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
