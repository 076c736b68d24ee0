package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOHLCV is one provider bar after parsing. Date is midnight UTC.
type StockOHLCV struct {
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// AlphaVantageDailyResponse is the TIME_SERIES_DAILY payload. Throttling and
// bad symbols come back as 200 with one of the message fields set.
type AlphaVantageDailyResponse struct {
	MetaData     map[string]string          `json:"Meta Data"`
	TimeSeries   map[string]AlphaVantageBar `json:"Time Series (Daily)"`
	ErrorMessage string                     `json:"Error Message"`
	Note         string                     `json:"Note"`
	Information  string                     `json:"Information"`
}

type AlphaVantageBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type FetchStockResponse struct {
	Symbol   string `json:"symbol"`
	Provider string `json:"provider"`
	Received int    `json:"received"`
	Stored   int    `json:"stored"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Archived bool   `json:"archived"`
}

type PricePoint struct {
	Date  string          `json:"date"`
	Close decimal.Decimal `json:"close"`
}
