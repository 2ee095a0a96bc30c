package validators

import "regexp"

// Iranian mobile numbers: 09 followed by nine digits.
var mobilePattern = regexp.MustCompile(`^09\d{9}$`)

func IsMobileNumberValid(phone string) bool {
	return mobilePattern.MatchString(phone)
}
