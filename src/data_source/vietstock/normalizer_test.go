package vietstock_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"market-indexes/src/data_source/vietstock"
	"market-indexes/src/helpers"
	"market-indexes/src/models"
)

var ict = time.FixedZone("ICT", 7*60*60)

func newTestNormalizer(now time.Time) *vietstock.Normalizer {
	n := vietstock.NewNormalizer(models.MVietStockConfig{
		BaseURL:      "https://finance.example",
		ChartBaseURL: "https://charts.example/",
		SourceLabel:  "VietStock.vn",
	}, func() time.Time { return now })

	seq := 0
	n.Nonce = func() string {
		seq++
		return fmt.Sprintf("n%d", seq)
	}
	return n
}

// payload decodes like the acquirer does, numbers stay json.Number
func payload(t *testing.T, doc string) models.MRawStockPayload {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var raw models.MRawStockPayload
	require.NoError(t, dec.Decode(&raw))
	return raw
}

const v1Payload = `{
	"PriorClosePrice": 25000, "ClosePrice": 25500, "OpenPrice": 25100, "AvrPrice": 25350.5,
	"CeilingPrice": 26750, "FloorPrice": 23250, "Highest": 25600, "Lowest": 25000,
	"YearHigh": 1234567, "YearLow": 19000, "Oscillate": 500, "PercentOscillate": 2.0,
	"ColorId": 1, "TradingVolume": 1234567, "CapitalLevel": 52000, "KLCPNY": 2089955445,
	"URL": "https://finance.example/VNM-ctcp-sua-viet-nam.htm"
}`

func TestNormalizeStockDataV1(t *testing.T) {
	t.Parallel()

	// Arrange: a Wednesday.
	n := newTestNormalizer(time.Date(2024, 6, 5, 10, 0, 0, 0, ict))

	// Act
	quote, err := n.Normalize(payload(t, v1Payload), "VNM", nil)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "VNM", quote.Info.Code)
	require.Equal(t, "VNM", quote.Info.Name)
	require.Equal(t, "2024-06-05", quote.Info.Date)
	require.Equal(t, "1.234.567 tỷ đ", quote.Info.Volume)
	require.Equal(t, "52.000 tỷ đ", quote.Info.Capital)
	require.Equal(t, "2.089.955.445", quote.Info.Shares)
	require.Equal(t, models.MQuoteSource{Label: "VietStock.vn", Url: "https://finance.example/VNM-ctcp-sua-viet-nam.htm"}, quote.Info.Source)

	require.Equal(t, "1.000 đ", quote.Prices.Unit)
	require.Equal(t, "25.00", quote.Prices.Reference)
	require.Equal(t, "25.50", quote.Prices.Close)
	require.Equal(t, "25.50", quote.Prices.Current)
	require.Equal(t, "25.10", quote.Prices.Open)
	require.Equal(t, "25.35", quote.Prices.Average)
	require.Equal(t, "1,234.57", quote.Prices.HighestOf52Weeks)

	require.Equal(t, models.MQuoteChanges{Volume: "0.50", Percent: "2.0%", Type: "up", Color: "green"}, quote.Changes)

	require.Len(t, quote.Charts, 6)
	require.Equal(t, "https://charts.example/VNM/1day.png?v=n1", quote.Charts["OneDay"])
	require.Equal(t, "https://charts.example/VNM/1year.png?v=n6", quote.Charts["OneYear"])
}

func TestNormalizeTradingInfoV2(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(time.Date(2024, 6, 5, 10, 0, 0, 0, ict))
	raw := payload(t, `{
		"PriorClosePrice": 98000, "LastPrice": 96500, "OpenPrice": 97000, "AvrPrice": null,
		"CeilingPrice": 104800, "FloorPrice": 91200, "HighestPrice": 97500, "LowestPrice": 96000,
		"Max52W": 120000, "Min52W": 80000, "Change": -1500, "PerChange": -1.53,
		"ColorId": -1, "TotalVol": 3456, "MarketCapital": "12,345", "KLCPNY": 1000
	}`)

	quote, err := n.Normalize(raw, "FPT", &models.MCompanyInfo{Code: "FPT", Name: "CTCP FPT", URL: "https://finance.example/FPT-ctcp-fpt.htm"})

	require.NoError(t, err)
	require.Equal(t, "CTCP FPT", quote.Info.Name)
	require.Equal(t, "https://finance.example/FPT-ctcp-fpt.htm", quote.Info.Source.Url)
	require.Equal(t, "96.50", quote.Prices.Current)
	require.Equal(t, "96.50", quote.Prices.Close)
	require.Equal(t, "0.00", quote.Prices.Average)
	require.Equal(t, "12.345 tỷ đ", quote.Info.Capital)
	require.Equal(t, models.MQuoteChanges{Volume: "-1.50", Percent: "-1.53%", Type: "down", Color: "red"}, quote.Changes)
}

func TestNormalizeFallsBackToLocalSourceURL(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(time.Date(2024, 6, 5, 10, 0, 0, 0, ict))
	quote, err := n.Normalize(payload(t, `{"PriorClosePrice": 1000, "ClosePrice": null, "PercentOscillate": null, "ColorId": null}`), "HPG", nil)

	require.NoError(t, err)
	require.Equal(t, "HPG", quote.Info.Name)
	require.Equal(t, "https://finance.example/HPG.htm", quote.Info.Source.Url)
	require.Equal(t, "0.00", quote.Prices.Close)
	require.Equal(t, models.MQuoteChanges{Volume: "0.00", Percent: "0%", Type: "none", Color: "yellow"}, quote.Changes)
}

func TestNormalizeWeekendDates(t *testing.T) {
	t.Parallel()

	raw := payload(t, v1Payload)

	saturday, err := newTestNormalizer(time.Date(2024, 6, 8, 10, 0, 0, 0, ict)).Normalize(raw, "VNM", nil)
	require.NoError(t, err)
	require.Equal(t, "2024-06-07", saturday.Info.Date)

	sunday, err := newTestNormalizer(time.Date(2024, 6, 9, 10, 0, 0, 0, ict)).Normalize(raw, "VNM", nil)
	require.NoError(t, err)
	require.Equal(t, "2024-06-07", sunday.Info.Date)
}

func TestNormalizeUnknownContractIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestNormalizer(time.Now()).Normalize(payload(t, `{"PriorClosePrice": 1000, "Price": 2}`), "VNM", nil)
	require.Equal(t, helpers.KindNotFound, helpers.KindOf(err))
}

func TestNormalizeUncoercibleFieldIsSchemaMismatch(t *testing.T) {
	t.Parallel()

	_, err := newTestNormalizer(time.Now()).Normalize(payload(t, `{"PriorClosePrice": 1000, "ClosePrice": "n/a"}`), "VNM", nil)
	require.Equal(t, helpers.KindSchemaMismatch, helpers.KindOf(err))
	require.Contains(t, err.Error(), "ClosePrice")

	_, err = newTestNormalizer(time.Now()).Normalize(payload(t, `{"PriorClosePrice": 1000, "ClosePrice": 1, "OpenPrice": {"v": 1}}`), "VNM", nil)
	require.Equal(t, helpers.KindSchemaMismatch, helpers.KindOf(err))
}

func TestChangeDirectionIsTotal(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{-100, -1, 0, 1, 100} {
		direction, color := vietstock.ChangeDirection(id)
		switch {
		case id > 0:
			require.Equal(t, [2]string{"up", "green"}, [2]string{direction, color})
		case id < 0:
			require.Equal(t, [2]string{"down", "red"}, [2]string{direction, color})
		default:
			require.Equal(t, [2]string{"none", "yellow"}, [2]string{direction, color})
		}
	}
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "25.00", vietstock.FormatPrice(decimal.NewFromInt(25000)))
	require.Equal(t, "25.50", vietstock.FormatPrice(decimal.NewFromInt(25500)))
	require.Equal(t, "1,234.57", vietstock.FormatPrice(decimal.NewFromInt(1234567)))
	require.Equal(t, "0.00", vietstock.FormatPrice(decimal.Zero))
	require.Equal(t, "1.234.567", vietstock.FormatCount(decimal.NewFromInt(1234567)))
	require.Equal(t, "999", vietstock.FormatCount(decimal.NewFromInt(999)))
}
