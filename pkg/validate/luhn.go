package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid Luhn number (card-style account
// numbers).
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
