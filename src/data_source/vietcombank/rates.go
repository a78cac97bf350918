package vietcombank

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

type exrateList struct {
	XMLName xml.Name `xml:"ExrateList"`
	Rates   []exrate `xml:"Exrate"`
}

type exrate struct {
	CurrencyCode string `xml:"CurrencyCode,attr"`
	CurrencyName string `xml:"CurrencyName,attr"`
	Buy          string `xml:"Buy,attr"`
	Sell         string `xml:"Sell,attr"`
	Transfer     string `xml:"Transfer,attr"`
}

// -----------------------------------------------------------------------------

type ExchangeRateSource struct {
	Network  interfaces.INetworkManager
	RatesURL string
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewExchangeRateSource(nm interfaces.INetworkManager, cfg models.MVietcombankConfig, log *logger.Logger) *ExchangeRateSource {
	return &ExchangeRateSource{Network: nm, RatesURL: cfg.RatesURL, Logger: log}
}

// -----------------------------------------------------------------------------

// FetchRates returns the feed keyed by upper-cased currency code.
func (s *ExchangeRateSource) FetchRates(ctx context.Context) (map[string]models.MExchangeRate, error) {
	body, err := s.Network.GetText(ctx, s.RatesURL, nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("exchange rates: %w", ctxErr)
		}
		return nil, helpers.NewUpstreamUnavailable("exchange rates feed unavailable", err)
	}

	rates, err := ParseRates(body)
	if err != nil {
		return nil, helpers.NewUpstreamUnavailable("exchange rates feed unreadable", err)
	}

	s.Logger.Debug("Fetched %d exchange rates", len(rates))
	return rates, nil
}

// -----------------------------------------------------------------------------

// ParseRates maps an ExrateList document. The feed declares its own encoding.
func ParseRates(document string) (map[string]models.MExchangeRate, error) {
	dec := xml.NewDecoder(strings.NewReader(document))
	dec.CharsetReader = charset.NewReaderLabel

	var list exrateList
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode ExrateList: %w", err)
	}

	rates := make(map[string]models.MExchangeRate, len(list.Rates))
	for _, r := range list.Rates {
		code := strings.ToUpper(strings.TrimSpace(r.CurrencyCode))
		if code == "" {
			continue
		}

		entry := models.MExchangeRate{Code: code, Name: CurrencyName(r.CurrencyName)}
		var err error
		if entry.Buy, err = ParseAmount(r.Buy); err != nil {
			return nil, fmt.Errorf("%s Buy: %w", code, err)
		}
		if entry.Sell, err = ParseAmount(r.Sell); err != nil {
			return nil, fmt.Errorf("%s Sell: %w", code, err)
		}
		if entry.Transfer, err = ParseAmount(r.Transfer); err != nil {
			return nil, fmt.Errorf("%s Transfer: %w", code, err)
		}
		rates[code] = entry
	}
	return rates, nil
}

// -----------------------------------------------------------------------------

// ParseAmount reads "25,450.00" style numbers; "-" and blanks are 0.
func ParseAmount(value string) (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if v == "" || v == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// -----------------------------------------------------------------------------

// CurrencyName turns "US.DOLLAR" into "Us Dollar".
func CurrencyName(raw string) string {
	name := strings.ToLower(strings.ReplaceAll(raw, ".", " "))
	// A Caser holds state, so one per call
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
