package vietstock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// CompanyLookup is the result of a best-effort company search. Info is nil
// when nothing usable was found and Diagnostic then says why.
type CompanyLookup struct {
	Info       *models.MCompanyInfo
	Diagnostic string
}

func (l CompanyLookup) Found() bool {
	return l.Info != nil
}

// -----------------------------------------------------------------------------

type CompanyDirectory struct {
	Network   interfaces.INetworkManager
	SearchURL string // {code} is replaced by the symbol
	BaseURL   string // resolves relative company links
	Logger    *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCompanyDirectory(nm interfaces.INetworkManager, cfg models.MVietStockConfig, log *logger.Logger) *CompanyDirectory {
	return &CompanyDirectory{
		Network:   nm,
		SearchURL: cfg.CompanySearchURL,
		BaseURL:   cfg.BaseURL,
		Logger:    log,
	}
}

// -----------------------------------------------------------------------------

// Lookup never fails; every problem ends up in the diagnostic.
func (d *CompanyDirectory) Lookup(ctx context.Context, code string) CompanyLookup {
	if d.SearchURL == "" {
		return CompanyLookup{Diagnostic: "company search disabled"}
	}

	target := strings.ReplaceAll(d.SearchURL, "{code}", url.QueryEscape(code))
	body, err := d.Network.GetText(ctx, target, map[string]string{"Accept": "application/json"})
	if err != nil {
		return CompanyLookup{Diagnostic: fmt.Sprintf("company search: %v", err)}
	}

	var doc any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return CompanyLookup{Diagnostic: fmt.Sprintf("company search payload: %v", err)}
	}

	entry, ok := pickCompany(candidates(doc), code)
	if !ok {
		return CompanyLookup{Diagnostic: fmt.Sprintf("company %s not listed", code)}
	}

	info := &models.MCompanyInfo{
		Code: code,
		Name: firstString(entry, "Name", "name", "CompanyName", "companyName"),
		URL:  d.resolve(firstString(entry, "URL", "Url", "url")),
	}
	if info.Name == "" && info.URL == "" {
		return CompanyLookup{Diagnostic: fmt.Sprintf("company %s has neither name nor url", code)}
	}
	return CompanyLookup{Info: info}
}

// -----------------------------------------------------------------------------

func (d *CompanyDirectory) resolve(link string) string {
	if link == "" || d.BaseURL == "" {
		return link
	}
	base, err := url.Parse(d.BaseURL)
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}

// -----------------------------------------------------------------------------

// candidates accepts a bare array, a single object or an object wrapping
// the array under data
func candidates(doc any) []map[string]any {
	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		if wrapped, ok := v["data"].([]any); ok {
			items = wrapped
		} else if wrapped, ok := v["Data"].([]any); ok {
			items = wrapped
		} else {
			items = []any{v}
		}
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

func pickCompany(entries []map[string]any, code string) (map[string]any, bool) {
	for _, e := range entries {
		if strings.EqualFold(firstString(e, "Code", "code", "StockCode", "stockCode"), code) {
			return e, true
		}
	}
	if len(entries) == 1 && firstString(entries[0], "Code", "code", "StockCode", "stockCode") == "" {
		return entries[0], true
	}
	return nil, false
}

// -----------------------------------------------------------------------------

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
