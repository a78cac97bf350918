package vietstock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

const (
	// ViewedSymbolCookie marks the symbol as most recently viewed
	ViewedSymbolCookie = "finance_viewedstock"

	// ReferencePriceField must be present in every usable payload
	ReferencePriceField = "PriorClosePrice"

	maxTraceBytes = 2048
)

// -----------------------------------------------------------------------------

// QuoteAcquirer posts the authenticated trading-data request for one symbol.
type QuoteAcquirer struct {
	Network  interfaces.INetworkManager
	Endpoint string
	Referer  string
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewQuoteAcquirer(nm interfaces.INetworkManager, endpoint, referer string, log *logger.Logger) *QuoteAcquirer {
	return &QuoteAcquirer{Network: nm, Endpoint: endpoint, Referer: referer, Logger: log}
}

// -----------------------------------------------------------------------------

// Acquire returns the raw payload for code. Every acquisition failure is a
// NotFoundError; cancellation of ctx is returned as the context error.
func (a *QuoteAcquirer) Acquire(ctx context.Context, code string, session models.MQuoteSession) (models.MRawStockPayload, error) {
	headers := map[string]string{
		"Content-Type":     "application/x-www-form-urlencoded",
		"X-Requested-With": "XMLHttpRequest",
		"Accept":           "application/json, text/javascript, */*; q=0.01",
	}
	if cookie := BuildCookieHeader(code, session); cookie != "" {
		headers["Cookie"] = cookie
	}
	if a.Referer != "" {
		headers["Referer"] = a.Referer
	}

	body := fmt.Sprintf("code=%s&s=0&t=&%s=%s", url.QueryEscape(code), AntiForgeryField, url.QueryEscape(session.AntiForgeryToken))

	resp, err := a.Network.Fetch(ctx, models.MFetchRequest{
		Method:  http.MethodPost,
		URL:     a.Endpoint,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("acquire %s: %w", code, ctxErr)
		}
		a.Logger.Warning("Trading data request for %s failed: %v", code, err)
		return nil, helpers.NewNotFound(fmt.Sprintf("stock quote %s not found", code), err)
	}

	if a.Logger.DebugEnabled() {
		a.Logger.Debug("POST %s [%s] -> %d %s", a.Endpoint, body, resp.StatusCode, truncate(resp.Body, maxTraceBytes))
	}

	if !resp.IsSuccess() {
		a.Logger.Warning("Trading data request for %s returned status %d", code, resp.StatusCode)
		return nil, helpers.NewNotFound(fmt.Sprintf("stock quote %s not found", code), fmt.Errorf("status %d", resp.StatusCode))
	}

	payload, err := decodePayload(resp.Body)
	if err != nil {
		a.Logger.Warning("Trading data for %s is unusable: %v", code, err)
		return nil, helpers.NewNotFound(fmt.Sprintf("stock quote %s not found", code), err)
	}

	if v, ok := payload[ReferencePriceField]; !ok || v == nil {
		return nil, helpers.NewNotFound(fmt.Sprintf("stock quote %s not found", code), fmt.Errorf("missing %s", ReferencePriceField))
	}

	return payload, nil
}

// -----------------------------------------------------------------------------

// BuildCookieHeader joins the session cookies, skipping empty values.
func BuildCookieHeader(code string, session models.MQuoteSession) string {
	pairs := [][2]string{
		{ViewedSymbolCookie, code},
		{LanguageCookie, session.Locale},
		{SessionCookie, session.SessionID},
		{AntiForgeryField, session.AntiForgeryToken},
	}

	var parts []string
	for _, p := range pairs {
		if p[1] != "" {
			parts = append(parts, p[0]+"="+p[1])
		}
	}
	return strings.Join(parts, "; ")
}

// -----------------------------------------------------------------------------

// decodePayload accepts a JSON object, or an array whose first element is one.
func decodePayload(body []byte) (models.MRawStockPayload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode trading data: %w", err)
	}

	switch v := doc.(type) {
	case map[string]any:
		return v, nil
	case []any:
		if len(v) > 0 {
			if obj, ok := v[0].(map[string]any); ok {
				return obj, nil
			}
		}
		return nil, fmt.Errorf("trading data array holds no object")
	default:
		return nil, fmt.Errorf("trading data is %T, not an object", doc)
	}
}

// -----------------------------------------------------------------------------

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
