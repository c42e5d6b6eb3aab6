package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsAccountNumber checks the Luhn check digit on an external bank account
// number before it is stored or sent to the bank API.
func IsAccountNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
