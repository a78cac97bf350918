package vietstock

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"market-indexes/src/models"
	"market-indexes/src/utils"
)

const (
	PriceUnit     = "1.000 đ"
	BillionSuffix = " tỷ đ"
)

var (
	thousand  = decimal.NewFromInt(1000)
	enPrinter = message.NewPrinter(language.AmericanEnglish)
	viPrinter = message.NewPrinter(language.Vietnamese)
)

// ChartPeriods maps the public period name to the chart image name
var ChartPeriods = []struct{ Name, File string }{
	{"OneDay", "1day"},
	{"OneWeek", "7days"},
	{"OneMonth", "1month"},
	{"ThreeMonths", "3months"},
	{"SixMonths", "6months"},
	{"OneYear", "1year"},
}

// -----------------------------------------------------------------------------

// Normalizer turns a raw payload into the public quote shape. It performs no I/O.
type Normalizer struct {
	Now           func() time.Time
	Nonce         func() string
	ChartBaseURL  string
	SourceBaseURL string
	SourceLabel   string
}

// -----------------------------------------------------------------------------

func NewNormalizer(cfg models.MVietStockConfig, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{
		Now:           now,
		Nonce:         uuid.NewString,
		ChartBaseURL:  strings.TrimRight(cfg.ChartBaseURL, "/"),
		SourceBaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		SourceLabel:   cfg.SourceLabel,
	}
}

// -----------------------------------------------------------------------------

// Normalize builds the quote for code. company may be nil.
func (n *Normalizer) Normalize(raw models.MRawStockPayload, code string, company *models.MCompanyInfo) (*models.MNormalizedQuote, error) {
	f, _, err := readQuoteFields(raw, code)
	if err != nil {
		return nil, err
	}

	changeType, changeColor := ChangeDirection(f.ColorID)

	percent := "0%"
	if f.ChangePercent != "" {
		percent = f.ChangePercent + "%"
	}

	return &models.MNormalizedQuote{
		Info: models.MQuoteInfo{
			Code:    code,
			Name:    n.companyName(code, company),
			Date:    utils.MostRecentTradingDay(n.Now()).Format(time.DateOnly),
			Volume:  FormatCount(f.Volume) + BillionSuffix,
			Capital: FormatCount(f.Capital) + BillionSuffix,
			Shares:  FormatCount(f.Shares),
			Source: models.MQuoteSource{
				Label: n.SourceLabel,
				Url:   n.sourceURL(code, company, f.SourceURL),
			},
		},
		Prices: models.MQuotePrices{
			Unit:             PriceUnit,
			Current:          FormatPrice(f.Current),
			Reference:        FormatPrice(f.Reference),
			Close:            FormatPrice(f.Close),
			Open:             FormatPrice(f.Open),
			Ceiling:          FormatPrice(f.Ceiling),
			Floor:            FormatPrice(f.Floor),
			Highest:          FormatPrice(f.Highest),
			Lowest:           FormatPrice(f.Lowest),
			Average:          FormatPrice(f.Average),
			HighestOf52Weeks: FormatPrice(f.High52W),
			LowestOf52Weeks:  FormatPrice(f.Low52W),
		},
		Changes: models.MQuoteChanges{
			Volume:  FormatPrice(f.Change),
			Percent: percent,
			Type:    changeType,
			Color:   changeColor,
		},
		Charts: n.charts(code),
	}, nil
}

// -----------------------------------------------------------------------------

func (n *Normalizer) companyName(code string, company *models.MCompanyInfo) string {
	if company != nil && company.Name != "" {
		return company.Name
	}
	return code
}

// -----------------------------------------------------------------------------

func (n *Normalizer) sourceURL(code string, company *models.MCompanyInfo, payloadURL string) string {
	switch {
	case company != nil && company.URL != "":
		return company.URL
	case payloadURL != "":
		return payloadURL
	default:
		return fmt.Sprintf("%s/%s.htm", n.SourceBaseURL, code)
	}
}

// -----------------------------------------------------------------------------

func (n *Normalizer) charts(code string) map[string]string {
	charts := make(map[string]string, len(ChartPeriods))
	for _, p := range ChartPeriods {
		charts[p.Name] = fmt.Sprintf("%s/%s/%s.png?v=%s", n.ChartBaseURL, code, p.File, n.Nonce())
	}
	return charts
}

// -----------------------------------------------------------------------------

// ChangeDirection maps the upstream color id to direction and color.
func ChangeDirection(colorID int64) (string, string) {
	switch {
	case colorID > 0:
		return "up", "green"
	case colorID < 0:
		return "down", "red"
	default:
		return "none", "yellow"
	}
}

// -----------------------------------------------------------------------------

// FormatPrice scales a sub-unit amount to thousands, en-US "#,##0.00".
func FormatPrice(amount decimal.Decimal) string {
	return enPrinter.Sprintf("%.2f", amount.Div(thousand).Round(2).InexactFloat64())
}

// -----------------------------------------------------------------------------

// FormatCount renders a whole number with vi-VN grouping ("1.234.567").
func FormatCount(amount decimal.Decimal) string {
	return viPrinter.Sprintf("%d", amount.Round(0).IntPart())
}
