package core

import (
	"reflect"
	"sort"
	"testing"
)

func validDisbursementInput() DisbursementInput {
	return DisbursementInput{
		PayeeName:   "Acme Printing",
		AmountCents: 50000,
		Date:        "2026-02-01",
		Purpose:     "Flyers",
		Category:    "operating",
	}
}

func TestDisbursementInputValid(t *testing.T) {
	in := validDisbursementInput()
	in.PayeeName = "  Acme Printing  "
	in.City = " Denver "

	if errs := in.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	d := in.Normalize()
	if d.PayeeName != "Acme Printing" {
		t.Errorf("payee not trimmed: %q", d.PayeeName)
	}
	if d.Address.City != "Denver" {
		t.Errorf("city not trimmed: %q", d.Address.City)
	}
	if d.Address.Line1 != "" || d.Address.State != "" || d.Address.Zip != "" {
		t.Errorf("absent address fields should be empty strings: %+v", d.Address)
	}
	if d.Amount.Cents != 50000 {
		t.Errorf("amount changed: %d", d.Amount.Cents)
	}
	if d.Category != CategoryOperating {
		t.Errorf("category = %q", d.Category)
	}
}

func TestDisbursementInputAllErrorsReported(t *testing.T) {
	errs := DisbursementInput{}.Validate()
	want := []string{
		"amountCents must be a positive integer",
		"category is required",
		"date is required",
		"payeeName is required",
		"purpose is required",
	}
	got := append([]string(nil), errs...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDisbursementInputFieldErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*DisbursementInput)
		wantErr string
	}{
		{"blank payee", func(in *DisbursementInput) { in.PayeeName = "   " }, "payeeName is required"},
		{"zero amount", func(in *DisbursementInput) { in.AmountCents = 0 }, "amountCents must be a positive integer"},
		{"negative amount", func(in *DisbursementInput) { in.AmountCents = -500 }, "amountCents must be a positive integer"},
		{"loose date", func(in *DisbursementInput) { in.Date = "2026-2-5" }, "date must be in YYYY-MM-DD format"},
		{"impossible date", func(in *DisbursementInput) { in.Date = "2026-02-30" }, "date must be in YYYY-MM-DD format"},
		{"blank purpose", func(in *DisbursementInput) { in.Purpose = " " }, "purpose is required"},
		{
			"unknown category",
			func(in *DisbursementInput) { in.Category = "bribery" },
			"category must be one of: operating, contribution, independent_expenditure, other",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validDisbursementInput()
			tc.mutate(&in)
			errs := in.Validate()
			if len(errs) != 1 || errs[0] != tc.wantErr {
				t.Errorf("got %v, want exactly [%q]", errs, tc.wantErr)
			}
		})
	}
}

func TestContributionInputValidate(t *testing.T) {
	in := ContributionInput{
		PayerName:   "Jordan Smith",
		AmountCents: 2500,
		Date:        "2026-01-15",
	}
	if errs := in.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ContributionInput{Date: "01/15/2026"}.Validate()
	want := []string{
		"amountCents must be a positive integer",
		"date must be in YYYY-MM-DD format",
		"payerName is required",
	}
	got := append([]string(nil), errs...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
