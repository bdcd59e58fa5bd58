// Package checkout validates payment forms and simulates a payment gateway.
// It stands in for real settlement; nothing here moves money.
package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Form field keys used in ValidationResult.Errors. They match the JSON
// field names of PaymentDetails so each message lands next to its field.
const (
	FieldCardNumber     = "card_number"
	FieldExpiry         = "expiry"
	FieldCVV            = "cvv"
	FieldCardholderName = "cardholder_name"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentDetails is the checkout form input.
type PaymentDetails struct {
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
	PaymentMethod  string `json:"payment_method,omitempty"`
}

// ValidationResult collects every rule violation, keyed by field. Callers
// must not proceed to payment processing while IsValid is false.
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors"`
}

// ValidatePaymentDetails checks all rules independently and reports every
// violation, not just the first. The expiry comparison uses now's month and
// two-digit year; a card expiring in the current month is still valid.
func ValidatePaymentDetails(details PaymentDetails, now time.Time) ValidationResult {
	errs := make(map[string]string)

	if !isCardNumber(details.CardNumber) {
		errs[FieldCardNumber] = "please enter a valid 16-digit card number"
	}

	if !expiryPattern.MatchString(details.Expiry) {
		errs[FieldExpiry] = "please enter a valid expiry date (MM/YY)"
	} else if expired(details.Expiry, now) {
		errs[FieldExpiry] = "card has expired"
	}

	if !cvvPattern.MatchString(details.CVV) {
		errs[FieldCVV] = "please enter a valid CVV code"
	}

	if len(strings.TrimSpace(details.CardholderName)) < 3 {
		errs[FieldCardholderName] = "please enter the cardholder name"
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func isCardNumber(raw string) bool {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// expired assumes the MM/YY shape has already been checked.
func expired(expiry string, now time.Time) bool {
	month, _ := strconv.Atoi(expiry[:2])
	year, _ := strconv.Atoi(expiry[3:])

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	return year < currentYear || (year == currentYear && month < currentMonth)
}
