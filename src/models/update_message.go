package models

import "encoding/json"

// Update types published after a fresh result was computed
const (
	UpdateStockQuote    = "Indexes#StockQuote"
	UpdateStockIndexes  = "Indexes#StockIndexes"
	UpdateExchangeRates = "Indexes#ExchangeRates"
)

// MUpdateMessage is broadcast to websocket listeners
type MUpdateMessage struct {
	DeviceID string          `json:"deviceId"`
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data"`
}

// MSubscribeCommand for client messages
type MSubscribeCommand struct {
	Command string   `json:"command"`
	Types   []string `json:"types"`
}
