package util

import (
	"testing"
)

func TestValidateMonthYear_Valid(t *testing.T) {
	cases := [][2]int{{1, 2024}, {12, 2024}, {6, 2000}, {7, 2100}}

	for _, c := range cases {
		if err := ValidateMonthYear(c[0], c[1]); err != nil {
			t.Errorf("ValidateMonthYear(%d, %d) error = %v, want nil", c[0], c[1], err)
		}
	}
}

func TestValidateMonthYear_Invalid(t *testing.T) {
	cases := [][2]int{{0, 2024}, {13, 2024}, {-1, 2024}, {5, 1999}, {5, 2101}}

	for _, c := range cases {
		if err := ValidateMonthYear(c[0], c[1]); err == nil {
			t.Errorf("ValidateMonthYear(%d, %d) error = nil, want error", c[0], c[1])
		}
	}
}

func TestValidateAmount_Positive(t *testing.T) {
	cases := []float64{0.01, 1.0, 100.5, 999999999.99 / 1000}

	for _, amount := range cases {
		if err := ValidateAmount(amount); err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_Invalid(t *testing.T) {
	cases := []float64{0, -0.01, -100, 1000000000}

	for _, amount := range cases {
		if err := ValidateAmount(amount); err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestValidateDate_Valid(t *testing.T) {
	cases := []string{
		"2024-01-01",
		"2024-02-29", // leap year
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range cases {
		if err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
		"2023-02-29", // not a leap year
	}

	for _, date := range cases {
		if err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestCentsFromAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{12.34, 1234},
		{0.005, 1}, // rounds half up
		{250000, 25000000},
	}

	for _, c := range cases {
		if got := CentsFromAmount(c.amount); got != c.want {
			t.Errorf("CentsFromAmount(%f) = %d, want %d", c.amount, got, c.want)
		}
	}
}

func TestAmountFromCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{1234, "12.34"},
		{-1234, "-12.34"},
	}

	for _, c := range cases {
		if got := AmountFromCents(c.cents); got != c.want {
			t.Errorf("AmountFromCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}
