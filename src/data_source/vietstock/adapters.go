package vietstock

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"market-indexes/src/helpers"
	"market-indexes/src/models"
)

// quoteFields is the contract-independent view of a trading-data payload.
// Prices are still in sub-units (dong).
type quoteFields struct {
	Reference decimal.Decimal
	Current   decimal.Decimal
	Close     decimal.Decimal
	Open      decimal.Decimal
	Average   decimal.Decimal
	Ceiling   decimal.Decimal
	Floor     decimal.Decimal
	Highest   decimal.Decimal
	Lowest    decimal.Decimal
	High52W   decimal.Decimal
	Low52W    decimal.Decimal

	Change        decimal.Decimal
	ChangePercent string // empty when absent
	ColorID       int64

	Volume  decimal.Decimal
	Capital decimal.Decimal
	Shares  decimal.Decimal

	SourceURL string // empty when absent
}

// quoteAdapter maps one known upstream contract
type quoteAdapter struct {
	Name          string
	Discriminator string
	Read          func(r *fieldReader) quoteFields
}

// Newest contract first
var quoteAdapters = []quoteAdapter{
	{
		Name:          "tradinginfo-v2",
		Discriminator: "LastPrice",
		Read: func(r *fieldReader) quoteFields {
			current := r.Decimal("LastPrice")
			closePrice := current
			if r.Has("ClosePrice") {
				closePrice = r.Decimal("ClosePrice")
			}
			return quoteFields{
				Reference:     r.Decimal("PriorClosePrice"),
				Current:       current,
				Close:         closePrice,
				Open:          r.Decimal("OpenPrice"),
				Average:       r.Decimal("AvrPrice"),
				Ceiling:       r.Decimal("CeilingPrice"),
				Floor:         r.Decimal("FloorPrice"),
				Highest:       r.Decimal("HighestPrice"),
				Lowest:        r.Decimal("LowestPrice"),
				High52W:       r.Decimal("Max52W"),
				Low52W:        r.Decimal("Min52W"),
				Change:        r.Decimal("Change"),
				ChangePercent: r.Text("PerChange"),
				ColorID:       r.Integer("ColorId"),
				Volume:        r.Decimal("TotalVol"),
				Capital:       r.Decimal("MarketCapital"),
				Shares:        r.Decimal("KLCPNY"),
				SourceURL:     r.Text("URL"),
			}
		},
	},
	{
		Name:          "stockdata-v1",
		Discriminator: "ClosePrice",
		Read: func(r *fieldReader) quoteFields {
			closePrice := r.Decimal("ClosePrice")
			return quoteFields{
				Reference:     r.Decimal("PriorClosePrice"),
				Current:       closePrice,
				Close:         closePrice,
				Open:          r.Decimal("OpenPrice"),
				Average:       r.Decimal("AvrPrice"),
				Ceiling:       r.Decimal("CeilingPrice"),
				Floor:         r.Decimal("FloorPrice"),
				Highest:       r.Decimal("Highest"),
				Lowest:        r.Decimal("Lowest"),
				High52W:       r.Decimal("YearHigh"),
				Low52W:        r.Decimal("YearLow"),
				Change:        r.Decimal("Oscillate"),
				ChangePercent: r.Text("PercentOscillate"),
				ColorID:       r.Integer("ColorId"),
				Volume:        r.Decimal("TradingVolume"),
				Capital:       r.Decimal("CapitalLevel"),
				Shares:        r.Decimal("KLCPNY"),
				SourceURL:     r.Text("URL"),
			}
		},
	},
}

// -----------------------------------------------------------------------------

// selectAdapter picks the first adapter whose discriminating field is present
func selectAdapter(raw models.MRawStockPayload) (quoteAdapter, bool) {
	for _, a := range quoteAdapters {
		if _, ok := raw[a.Discriminator]; ok {
			return a, true
		}
	}
	return quoteAdapter{}, false
}

// -----------------------------------------------------------------------------

// readQuoteFields runs the matching adapter. No adapter is a NotFoundError,
// an uncoercible numeric field a SchemaMismatchError.
func readQuoteFields(raw models.MRawStockPayload, code string) (quoteFields, string, error) {
	adapter, ok := selectAdapter(raw)
	if !ok {
		return quoteFields{}, "", helpers.NewNotFound(fmt.Sprintf("stock quote %s not found", code), fmt.Errorf("no known contract matches payload"))
	}

	r := &fieldReader{raw: raw}
	fields := adapter.Read(r)
	if r.err != nil {
		return quoteFields{}, adapter.Name, helpers.NewSchemaMismatch(fmt.Sprintf("stock quote %s (%s)", code, adapter.Name), r.err)
	}
	return fields, adapter.Name, nil
}

// -----------------------------------------------------------------------------
// fieldReader coerces loosely typed values, keeping the first failure.
// Absent and null values read as zero.
// -----------------------------------------------------------------------------

type fieldReader struct {
	raw models.MRawStockPayload
	err error
}

func (r *fieldReader) Has(key string) bool {
	v, ok := r.raw[key]
	return ok && v != nil
}

func (r *fieldReader) Decimal(key string) decimal.Decimal {
	d, err := toDecimal(r.raw[key])
	if err != nil {
		r.fail(key, err)
		return decimal.Zero
	}
	return d
}

func (r *fieldReader) Integer(key string) int64 {
	return r.Decimal(key).Round(0).IntPart()
}

func (r *fieldReader) Text(key string) string {
	switch v := r.raw[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r *fieldReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("field %s: %w", key, err)
	}
}

// -----------------------------------------------------------------------------

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" || s == "-" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, fmt.Errorf("unexpected %T value", v)
	}
}
