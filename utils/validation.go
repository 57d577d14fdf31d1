package utils

import (
	"regexp"
	"strings"
	"time"
)

// Card network names returned by CardNetwork.
const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkRupay      = "rupay"
	NetworkUnknown    = "unknown"
)

var (
	vpaRegex        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)
)

// ValidateVPA checks a UPI virtual payment address against the
// local-part@handle format.
func ValidateVPA(vpa string) bool {
	return vpaRegex.MatchString(vpa)
}

// CleanCardNumber strips spaces and dashes from a card number.
func CleanCardNumber(cardNumber string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, cardNumber)
}

// ValidateLuhn checks a card number with the mod-10 checksum. Spaces and
// dashes are stripped first; the cleaned number must be 13-19 digits.
func ValidateLuhn(cardNumber string) bool {
	cleaned := CleanCardNumber(cardNumber)
	if !cardDigitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// CardNetwork classifies a card number by its prefix. Callers run this only
// after the Luhn check passes.
func CardNetwork(cardNumber string) string {
	cleaned := CleanCardNumber(cardNumber)
	if cleaned == "" {
		return NetworkUnknown
	}

	switch {
	case strings.HasPrefix(cleaned, "4"):
		return NetworkVisa
	case len(cleaned) >= 2 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return NetworkMastercard
	case strings.HasPrefix(cleaned, "34"), strings.HasPrefix(cleaned, "37"):
		return NetworkAmex
	case strings.HasPrefix(cleaned, "60"), strings.HasPrefix(cleaned, "65"):
		return NetworkRupay
	case len(cleaned) >= 2 && cleaned[0] == '8' && cleaned[1] >= '1' && cleaned[1] <= '9':
		return NetworkRupay
	default:
		return NetworkUnknown
	}
}

// ValidateExpiry checks that the month is valid and the (year, month) pair is
// not strictly before the current month. Two-digit years are normalized by
// adding 2000.
func ValidateExpiry(month, year int) bool {
	return validateExpiryAt(month, year, time.Now())
}

func validateExpiryAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}
