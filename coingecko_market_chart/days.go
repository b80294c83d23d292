package coingecko_market_chart

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDays turns the raw days query value into a lookback within 1..maxDays.
// Bad input is corrected, never rejected; each correction yields a warning.
func ParseDays(raw string, defaultDays, maxDays int) (int, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return defaultDays, []string{fmt.Sprintf("invalid value for days parameter %q, defaulting to %d days", raw, defaultDays)}
	}

	switch {
	case days > maxDays:
		return maxDays, []string{fmt.Sprintf("public API users are limited to querying historical data within the past %d days, limiting to %d days", maxDays, maxDays)}
	case days < 1:
		return 1, []string{fmt.Sprintf("days %d is below 1, using 1", days)}
	}

	return days, nil
}
