package models

import "cashew-trade/internal/model"

// EvaluateRequest carries one set of trading inputs. Missing fields are
// simply zero; the engine is total over those.
type EvaluateRequest struct {
	Inputs model.TradeInputs `json:"inputs"`
}

// ImportRequest carries raw CSV text to merge into the current inputs.
type ImportRequest struct {
	Text string `json:"text" binding:"required"`
}
