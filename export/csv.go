package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/dashboard"
)

const fileNameLayout = "20060102_150405"

// Columns is the header row of the export
var Columns = []string{
	"id", "name", "symbol", "slug", "cmc_rank",
	"price", "market_cap", "volume_24h",
	"percent_change_1h", "percent_change_24h", "percent_change_7d", "percent_change_30d",
	"last_updated",
	"formatted_price", "formatted_market_cap", "formatted_volume",
	"formatted_percent_change_1h", "formatted_percent_change_24h",
	"formatted_percent_change_7d", "formatted_percent_change_30d",
}

// FileName is the attachment name of an export made at t
func FileName(t time.Time) string {
	return "crypto_data_" + t.Format(fileNameLayout) + ".csv"
}

// CSV renders the listings as a CSV document
func CSV(listings []dashboard.CoinListing) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, listings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes a header and one row per listing. Raw columns are followed by
// display duplicates; null values are empty raw cells and "N/A" display cells.
func WriteCSV(w io.Writer, listings []dashboard.CoinListing) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, l := range listings {
		changes := []null.Float{l.PercentChange1h, l.PercentChange24h, l.PercentChange7d, l.PercentChange30d}

		row := make([]string, 0, len(Columns))
		row = append(row, l.ID, l.Name, l.Symbol, l.Slug, rawInt(l.Rank))
		row = append(row, rawFloat(l.Price), rawFloat(l.MarketCap), rawFloat(l.Volume24h))
		for _, change := range changes {
			row = append(row, rawFloat(change))
		}
		row = append(row, rawTime(l.LastUpdated))
		row = append(row, formatPrice(l.Price), formatDollars(l.MarketCap), formatDollars(l.Volume24h))
		for _, change := range changes {
			row = append(row, formatPercent(change))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", l.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func rawFloat(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func rawInt(v null.Int) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func rawTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatPrice(v null.Float) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("$%.4f", v.Float64)
}

// formatDollars renders whole dollars with thousands separators, e.g. "$1,234,568"
func formatDollars(v null.Float) string {
	if !v.Valid {
		return "N/A"
	}
	return "$" + humanize.Comma(int64(math.Round(v.Float64)))
}

func formatPercent(v null.Float) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v.Float64)
}
