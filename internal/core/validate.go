package core

import (
	"fmt"
	"strings"
)

// DisbursementInput is the untyped inbound shape for a disbursement insert.
type DisbursementInput struct {
	PayeeName    string `json:"payeeName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	AmountCents  int64  `json:"amountCents"`
	Date         string `json:"date"`
	Purpose      string `json:"purpose"`
	Category     string `json:"category"`
	CheckNumber  string `json:"checkNumber"`
	ReceiptRef   string `json:"receiptRef"`
}

// ContributionInput is the untyped inbound shape for a contribution insert.
type ContributionInput struct {
	PayerName    string `json:"payerName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	AmountCents  int64  `json:"amountCents"`
	Date         string `json:"date"`
	Occupation   string `json:"occupation"`
	Employer     string `json:"employer"`
}

// Validate evaluates every rule and returns all violations as human-readable
// strings. An empty slice means the input is valid. Rules are never
// short-circuited so a caller can surface every problem at once.
func (in DisbursementInput) Validate() []string {
	var errs []string

	if strings.TrimSpace(in.PayeeName) == "" {
		errs = append(errs, "payeeName is required")
	}
	if in.AmountCents <= 0 {
		errs = append(errs, "amountCents must be a positive integer")
	}
	errs = appendDateErrors(errs, in.Date)
	if strings.TrimSpace(in.Purpose) == "" {
		errs = append(errs, "purpose is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "category is required")
	} else if _, err := ParseCategory(in.Category); err != nil {
		errs = append(errs, fmt.Sprintf("category must be one of: %s", strings.Join(CategoryNames(), ", ")))
	}

	return errs
}

// Normalize converts a valid input into a Disbursement with trimmed strings.
// Optional fields default to empty strings. Call only after Validate returns
// no errors.
func (in DisbursementInput) Normalize() Disbursement {
	category, _ := ParseCategory(in.Category)
	return Disbursement{
		PayeeName:   strings.TrimSpace(in.PayeeName),
		Address:     normalizeAddress(in.AddressLine1, in.City, in.State, in.Zip),
		Amount:      Money{Cents: in.AmountCents},
		Date:        Date(strings.TrimSpace(in.Date)),
		Purpose:     strings.TrimSpace(in.Purpose),
		Category:    category,
		CheckNumber: strings.TrimSpace(in.CheckNumber),
		ReceiptRef:  strings.TrimSpace(in.ReceiptRef),
	}
}

// Validate mirrors DisbursementInput.Validate for contributions.
func (in ContributionInput) Validate() []string {
	var errs []string

	if strings.TrimSpace(in.PayerName) == "" {
		errs = append(errs, "payerName is required")
	}
	if in.AmountCents <= 0 {
		errs = append(errs, "amountCents must be a positive integer")
	}
	errs = appendDateErrors(errs, in.Date)

	return errs
}

// Normalize converts a valid input into a Contribution with trimmed strings.
func (in ContributionInput) Normalize() Contribution {
	return Contribution{
		PayerName:  strings.TrimSpace(in.PayerName),
		Address:    normalizeAddress(in.AddressLine1, in.City, in.State, in.Zip),
		Amount:     Money{Cents: in.AmountCents},
		Date:       Date(strings.TrimSpace(in.Date)),
		Occupation: strings.TrimSpace(in.Occupation),
		Employer:   strings.TrimSpace(in.Employer),
	}
}

func appendDateErrors(errs []string, date string) []string {
	if strings.TrimSpace(date) == "" {
		return append(errs, "date is required")
	}
	if _, err := ParseDate(strings.TrimSpace(date)); err != nil {
		return append(errs, "date must be in YYYY-MM-DD format")
	}
	return errs
}

func normalizeAddress(line1, city, state, zip string) Address {
	return Address{
		Line1: strings.TrimSpace(line1),
		City:  strings.TrimSpace(city),
		State: strings.TrimSpace(state),
		Zip:   strings.TrimSpace(zip),
	}
}
