package models

import (
	"cashew-trade/internal/history"
	"cashew-trade/internal/model"
)

// EvaluateResponse returns the sanitized inputs and the fresh result.
type EvaluateResponse struct {
	Inputs  model.TradeInputs `json:"inputs"`
	Results model.TradeResult `json:"results"`
}

// ImportResponse reports the outcome of a CSV import. Results is present
// only when at least one record matched and a recalculation ran.
type ImportResponse struct {
	Matched bool               `json:"matched"`
	Inputs  model.TradeInputs  `json:"inputs"`
	Results *model.TradeResult `json:"results,omitempty"`
}

// SaveHistoryResponse reports whether the latest evaluation was recorded.
type SaveHistoryResponse struct {
	Saved   bool `json:"saved"`
	Entries int  `json:"entries"`
}

// HistoryResponse lists saved decisions, newest first.
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// ErrorResponse is the error envelope for every non-2xx reply.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
