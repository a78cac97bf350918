package cafef

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

const nameField = "name"

// -----------------------------------------------------------------------------

type StockIndexSource struct {
	Network    interfaces.INetworkManager
	IndexesURL string
	Referer    string
	Logger     *logger.Logger
}

// -----------------------------------------------------------------------------

func NewStockIndexSource(nm interfaces.INetworkManager, cfg models.MCafeFConfig, log *logger.Logger) *StockIndexSource {
	return &StockIndexSource{Network: nm, IndexesURL: cfg.IndexesURL, Referer: cfg.Referer, Logger: log}
}

// -----------------------------------------------------------------------------

func (s *StockIndexSource) FetchIndexes(ctx context.Context) (models.MStockIndexes, error) {
	headers := map[string]string{"Accept": "application/json"}
	if s.Referer != "" {
		headers["Referer"] = s.Referer
	}

	body, err := s.Network.GetText(ctx, s.IndexesURL, headers)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("stock indexes: %w", ctxErr)
		}
		return nil, helpers.NewUpstreamUnavailable("stock indexes feed unavailable", err)
	}

	indexes, err := ParseIndexes([]byte(body))
	if err != nil {
		return nil, helpers.NewUpstreamUnavailable("stock indexes feed unreadable", err)
	}

	s.Logger.Debug("Fetched %d stock indexes", len(indexes))
	return indexes, nil
}

// -----------------------------------------------------------------------------

// ParseIndexes keys every object of the array by its name; the other keys
// get their first letter capitalized and keep their raw JSON values.
func ParseIndexes(body []byte) (models.MStockIndexes, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var items []map[string]any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode index array: %w", err)
	}

	indexes := make(models.MStockIndexes, len(items))
	for _, item := range items {
		name, ok := item[nameField].(string)
		if !ok || name == "" {
			continue
		}

		fields := make(map[string]any, len(item))
		for k, v := range item {
			if k == nameField {
				continue
			}
			fields[CapitalizeFirst(k)] = v
		}
		indexes[name] = fields
	}
	return indexes, nil
}

// -----------------------------------------------------------------------------

func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
