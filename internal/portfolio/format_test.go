package portfolio

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{195000, "$195,000"},
		{985000, "$985,000"},
		{-5391.2, "-$5,391"},
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234567.89, "$1,234,568"},
	}
	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Errorf("Currency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCurrencyPrecise(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{198.5, "$198.50"},
		{268.42, "$268.42"},
		{-0.5, "-$0.50"},
		{1234.5, "$1,234.50"},
		{42000, "$42,000.00"},
	}
	for _, c := range cases {
		if got := CurrencyPrecise(c.in); got != c.want {
			t.Errorf("CurrencyPrecise(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.123, "12.3%"},
		{0.05, "5.0%"},
		{1, "100.0%"},
		{0, "0.0%"},
	}
	for _, c := range cases {
		if got := Percent(c.in); got != c.want {
			t.Errorf("Percent(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.0625, "6.25%"},
		{0.05, "5%"},
		{0.049, "4.9%"},
		{0.035, "3.5%"},
	}
	for _, c := range cases {
		if got := Rate(c.in); got != c.want {
			t.Errorf("Rate(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestThousands(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{542000, "$542K"},
		{18400, "$18.4K"},
		{1000, "$1K"},
		{62000, "$62K"},
	}
	for _, c := range cases {
		if got := Thousands(c.in); got != c.want {
			t.Errorf("Thousands(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMillions(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000000, "$1M"},
		{1950000, "$1.95M"},
		{1250000, "$1.25M"},
		{500000, "$0.5M"},
	}
	for _, c := range cases {
		if got := Millions(c.in); got != c.want {
			t.Errorf("Millions(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
