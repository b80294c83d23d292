package dashboard

import (
	"sort"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/market_errors"
)

// DefaultMoversCount is used when a request does not name n
const DefaultMoversCount = 5

// ChangeField names the percent change column movers are ranked by
type ChangeField string

const (
	PercentChange1h  ChangeField = "percent_change_1h"
	PercentChange24h ChangeField = "percent_change_24h"
	PercentChange7d  ChangeField = "percent_change_7d"
	PercentChange30d ChangeField = "percent_change_30d"
)

// ChangeFields lists the fields in display order
var ChangeFields = []ChangeField{PercentChange1h, PercentChange24h, PercentChange7d, PercentChange30d}

// ParseChangeField accepts a full column name or its window ("24h").
// Empty input selects the 24h change.
func ParseChangeField(raw string) (ChangeField, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return PercentChange24h, nil
	}
	for _, field := range ChangeFields {
		if raw == string(field) || "percent_change_"+raw == string(field) {
			return field, nil
		}
	}
	return "", market_errors.NewInvalidParameter("unknown change field %q", raw)
}

// Value reads the field from a listing
func (f ChangeField) Value(listing CoinListing) null.Float {
	switch f {
	case PercentChange1h:
		return listing.PercentChange1h
	case PercentChange7d:
		return listing.PercentChange7d
	case PercentChange30d:
		return listing.PercentChange30d
	default:
		return listing.PercentChange24h
	}
}

// TopMovers returns the n biggest gainers and losers by field.
// Rows with a null value are ignored. Both slices always have the same length:
// with fewer than 2n usable rows n drops to half of them. n <= 0 selects nothing.
func TopMovers(listings []CoinListing, n int, field ChangeField) (gainers, losers []CoinListing) {
	if n <= 0 {
		return []CoinListing{}, []CoinListing{}
	}

	valid := make([]CoinListing, 0, len(listings))
	for _, listing := range listings {
		if field.Value(listing).Valid {
			valid = append(valid, listing)
		}
	}

	if len(valid) < 2*n {
		n = len(valid) / 2
	}
	if n == 0 {
		return []CoinListing{}, []CoinListing{}
	}

	gainers = append([]CoinListing(nil), valid...)
	sort.SliceStable(gainers, func(i, j int) bool {
		return field.Value(gainers[i]).Float64 > field.Value(gainers[j]).Float64
	})

	losers = append([]CoinListing(nil), valid...)
	sort.SliceStable(losers, func(i, j int) bool {
		return field.Value(losers[i]).Float64 < field.Value(losers[j]).Float64
	})

	return gainers[:n], losers[:n]
}
