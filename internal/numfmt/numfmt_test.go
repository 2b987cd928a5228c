package numfmt

import "testing"

func TestFormatDefault(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{4, "4"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0.1, "0.1"},
		{1234567.5, "1.2345675e+06"},
	}
	for _, c := range cases {
		if got := Format(c.v, Default); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatPrecision(t *testing.T) {
	cases := []struct {
		v         float64
		precision int
		want      string
	}{
		{2.5, 2, "2.50"},
		{2.345, 2, "2.35"},
		{4, 0, "4"},
		{4, 3, "4.000"},
	}
	for _, c := range cases {
		got := Format(c.v, Options{Precision: c.precision})
		if got != c.want {
			t.Errorf("Format(%v, precision=%d) = %q, want %q", c.v, c.precision, got, c.want)
		}
	}
}

func TestFormatGrouping(t *testing.T) {
	got := Format(1234567, Options{Precision: -1, Grouping: true, Locale: "en"})
	if got != "1,234,567" {
		t.Errorf("got %q", got)
	}

	got = Format(1234567.5, Options{Precision: 1, Grouping: true, Locale: "en"})
	if got != "1,234,567.5" {
		t.Errorf("got %q", got)
	}
}

func TestFormatGroupingLocale(t *testing.T) {
	// немецкая локаль меняет местами точку и запятую
	got := Format(1234.5, Options{Precision: 1, Grouping: true, Locale: "de"})
	if got != "1.234,5" {
		t.Errorf("got %q", got)
	}
}

func TestParseLocaleFallback(t *testing.T) {
	got := Format(1000, Options{Precision: -1, Grouping: true, Locale: "!!bad!!"})
	if got != "1,000" {
		t.Errorf("got %q", got)
	}
	got = Format(1000, Options{Precision: -1, Grouping: true})
	if got != "1,000" {
		t.Errorf("got %q", got)
	}
}
