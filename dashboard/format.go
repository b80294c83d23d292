package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/market_errors"
)

const (
	colorPositive = "#10B981"
	colorNegative = "#EF4444"
	colorNeutral  = "#94A3B8"
	colorMissing  = "gray"

	coinIconURLTemplate = "https://s2.coinmarketcap.com/static/img/coins/%dx%d/%s.png"
)

var largeNumberSuffixes = []string{"", "K", "M", "B", "T"}

// FormatLargeNumber renders a dollar amount with a K/M/B/T suffix, e.g. "$1.50M"
func FormatLargeNumber(num null.Float, precision int) string {
	if !num.Valid {
		return "N/A"
	}
	v := num.Float64
	if v == 0 {
		return "0"
	}

	magnitude := 0
	for math.Abs(v) >= 1000 && magnitude < len(largeNumberSuffixes)-1 {
		magnitude++
		v /= 1000
	}

	return fmt.Sprintf("$%.*f%s", precision, v, largeNumberSuffixes[magnitude])
}

// ParseLargeNumber reads back a value produced by FormatLargeNumber
func ParseLargeNumber(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "0" {
		return 0, nil
	}
	text = strings.ReplaceAll(strings.TrimPrefix(text, "$"), ",", "")
	if text == "" {
		return 0, market_errors.NewInvalidParameter("empty number %q", s)
	}

	multiplier := 1.0
	last := strings.ToUpper(text[len(text)-1:])
	for i := len(largeNumberSuffixes) - 1; i > 0; i-- {
		if last == largeNumberSuffixes[i] {
			multiplier = math.Pow(1000, float64(i))
			text = text[:len(text)-1]
			break
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, market_errors.NewInvalidParameter("not a formatted number: %q", s)
	}
	return v * multiplier, nil
}

// FormatPercent renders a percent with two decimals; positive values get a "+" when includeSign is set
func FormatPercent(percent null.Float, includeSign bool) string {
	if !percent.Valid {
		return "N/A"
	}
	sign := ""
	if includeSign && percent.Float64 > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, percent.Float64)
}

// PercentColor picks the display color for a change
func PercentColor(percent null.Float) string {
	switch {
	case !percent.Valid:
		return colorMissing
	case percent.Float64 > 0:
		return colorPositive
	case percent.Float64 < 0:
		return colorNegative
	default:
		return colorNeutral
	}
}

// CoinIconURL is the fallback icon for coins without an image
func CoinIconURL(symbol string, size int) string {
	if size <= 0 {
		size = 32
	}
	return fmt.Sprintf(coinIconURLTemplate, size, size, strings.ToLower(symbol))
}
