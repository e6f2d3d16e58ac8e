package format

import "testing"

func TestOrdinalDigits(t *testing.T) {
	tests := []struct {
		value    int
		minWidth int
		expected string
	}{
		{0, 2, "00"},
		{7, 2, "07"},
		{42, 2, "42"},
		{123, 2, "123"},
		{5, 4, "0005"},
		{-3, 2, "00"},
		{9, 0, "9"},
	}

	for _, tc := range tests {
		if got := OrdinalDigits(tc.value, tc.minWidth); got != tc.expected {
			t.Errorf("OrdinalDigits(%d, %d) = %q, expected %q", tc.value, tc.minWidth, got, tc.expected)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		ms       int64
		expected string
	}{
		{0, "00:00"},
		{999, "00:00"},
		{1000, "00:01"},
		{59999, "00:59"},
		{60000, "01:00"},
		{61500, "01:01"},
		{3599000, "59:59"},
		{3600000, "60:00"},
		{-500, "00:00"},
	}

	for _, tc := range tests {
		if got := ClockString(tc.ms); got != tc.expected {
			t.Errorf("ClockString(%d) = %q, expected %q", tc.ms, got, tc.expected)
		}
	}
}
