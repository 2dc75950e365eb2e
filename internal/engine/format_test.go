package engine_test

import (
	"testing"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{6_500_000, "6,500,000"},
		{-12345.4, "-12,345"},
	}
	for _, c := range cases {
		if got := engine.FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := engine.FormatPercent(21.0); got != "21.00%" {
		t.Errorf("FormatPercent(21.0) = %q, want %q", got, "21.00%")
	}
}
