package dto

import "github.com/shopspring/decimal"

type PredictionPoint struct {
	Date           string          `json:"date"`
	PredictedClose decimal.Decimal `json:"predicted_close"`
}

type PredictionResponse struct {
	Symbol      string            `json:"symbol"`
	Model       string            `json:"model"`
	BasedOn     int               `json:"based_on_bars"`
	Predictions []PredictionPoint `json:"predictions"`
}
