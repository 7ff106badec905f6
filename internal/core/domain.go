package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Disbursement categories form a closed set; the FEC code mapping below must
// stay exhaustive over it.
const (
	CategoryOperating    Category = "operating"
	CategoryContribution Category = "contribution"
	CategoryIndependent  Category = "independent_expenditure"
	CategoryOther        Category = "other"
)

const (
	PeriodQuarterly PeriodType = "quarterly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodYearly    PeriodType = "yearly"
)

type (
	Category string

	PeriodType string

	// Date is a calendar date in ISO YYYY-MM-DD form. ISO strings order
	// lexically, so plain string comparison is a valid date comparison.
	Date string

	Money struct {
		Cents int64 `json:"cents"`
	}

	// Address groups the optional payee/payer address fields. Absent fields
	// are empty strings, never null, so formatters need no nil checks.
	Address struct {
		Line1 string `json:"line1"`
		City  string `json:"city"`
		State string `json:"state"`
		Zip   string `json:"zip"`
	}

	// Disbursement is a single outbound payment. Records are immutable once
	// stored; corrections are new records.
	Disbursement struct {
		ID          string   `json:"id"`
		PayeeName   string   `json:"payeeName"`
		Address     Address  `json:"address"`
		Amount      Money    `json:"amount"`
		Date        Date     `json:"date"`
		Purpose     string   `json:"purpose"`
		Category    Category `json:"category"`
		CheckNumber string   `json:"checkNumber"`
		ReceiptRef  string   `json:"receiptRef"`
	}

	// Contribution is a single inbound payment. Occupation and employer are
	// optional at write time; the aggregator warns when they are missing on
	// an itemized contribution.
	Contribution struct {
		ID         string  `json:"id"`
		PayerName  string  `json:"payerName"`
		Address    Address `json:"address"`
		Amount     Money   `json:"amount"`
		Date       Date    `json:"date"`
		Occupation string  `json:"occupation"`
		Employer   string  `json:"employer"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid reporting period")
)

// Categories returns the closed category enumeration in canonical order.
func Categories() []Category {
	return []Category{CategoryOperating, CategoryContribution, CategoryIndependent, CategoryOther}
}

// CategoryNames returns the valid set as strings, for error messages.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// ParseCategory maps a raw string onto the enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	for _, valid := range Categories() {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q, must be one of: %s", ErrInvalidCategory, s, strings.Join(CategoryNames(), ", "))
}

// FECCode maps the category to the flat-file code set. The switch is
// exhaustive over the enumeration; adding a category without a code is a
// compile-visible change here.
func (c Category) FECCode() string {
	switch c {
	case CategoryOperating:
		return "OP"
	case CategoryContribution:
		return "CN"
	case CategoryIndependent:
		return "IE"
	case CategoryOther:
		return "OT"
	}
	return "OT"
}

func (c Category) Validate() error {
	_, err := ParseCategory(string(c))
	return err
}

// ParseDate validates a date string lexically against YYYY-MM-DD and then
// semantically. "2026-2-5" is rejected even though it parses as a date.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return "", fmt.Errorf("%w: %q must match YYYY-MM-DD", ErrInvalidDate, s)
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q must match YYYY-MM-DD", ErrInvalidDate, s)
		}
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}
	return Date(s), nil
}

func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

// Year returns the calendar year of a valid date.
func (d Date) Year() int {
	t, _ := time.Parse("2006-01-02", string(d))
	return t.Year()
}

// Compact returns the date in the flat-file YYYYMMDD representation.
func (d Date) Compact() string {
	return strings.ReplaceAll(string(d), "-", "")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (d Disbursement) Validate() error {
	if strings.TrimSpace(d.PayeeName) == "" {
		return errors.New("empty payee name")
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if err := d.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(d.Purpose) == "" {
		return errors.New("empty purpose")
	}
	return d.Category.Validate()
}

func (c Contribution) Validate() error {
	if strings.TrimSpace(c.PayerName) == "" {
		return errors.New("empty payer name")
	}
	if err := c.Amount.Validate(); err != nil {
		return err
	}
	return c.Date.Validate()
}
