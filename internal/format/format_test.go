package format

import (
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-25000, "-25,000"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC)
	if got, want := Date(d), "2026年3月5日"; got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250", "最大 250万円"},
		{"1200", "最大 1,200万円"},
		{"3-4", "最大 3-4万円"},
	}
	for _, tt := range tests {
		if got := Amount(tt.in); got != tt.want {
			t.Errorf("Amount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.2); got != "20%" {
		t.Errorf("Percent(0.2) = %q", got)
	}
	if got := Percent(1.0 / 3.0); got != "33%" {
		t.Errorf("Percent(1/3) = %q", got)
	}
}
