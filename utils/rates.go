package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRate converts a rate given either as a multiplier ("1.07") or as a
// percentage ("7%") into a multiplier (1.07).
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("ParseRate: invalid percentage %q: %w", s, err)
		}
		return pct/100 + 1, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ParseRate: invalid rate %q: %w", s, err)
	}
	return v, nil
}

// ParsePercent converts "4%" into 0.04. A bare number is returned as is.
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("ParsePercent: invalid percentage %q: %w", s, err)
		}
		return pct / 100, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ParsePercent: invalid value %q: %w", s, err)
	}
	return v, nil
}

// ToPercent converts a multiplier to percent growth: 1.07 -> 7.
func ToPercent(rate float64) float64 {
	return (rate - 1) * 100
}

// PercentString renders a multiplier as "7.00%". Non-positive multipliers
// mean everything was lost each period and render as "-infinity%".
func PercentString(rate float64) string {
	if rate <= 0 {
		return "-infinity%"
	}
	return fmt.Sprintf("%.2f%%", ToPercent(rate))
}

// RoundUpToNearestTen rounds n up to a multiple of ten.
func RoundUpToNearestTen(n int) int {
	if n%10 == 0 {
		return n
	}
	return (n/10 + 1) * 10
}
