package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cashew-trade/internal/api/models"
	"cashew-trade/internal/state"
)

// DeskHandler exposes the trading desk over HTTP.
type DeskHandler struct {
	desk *state.Desk
	log  zerolog.Logger
}

func NewDeskHandler(desk *state.Desk, log zerolog.Logger) *DeskHandler {
	return &DeskHandler{
		desk: desk,
		log:  log.With().Str("component", "api").Logger(),
	}
}

// Evaluate handles POST /api/v1/evaluate.
func (h *DeskHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, res := h.desk.Evaluate(req.Inputs)
	h.log.Debug().Float64("margin", res.GrossMarginPercent).Str("signal", string(res.SellSignal)).Msg("evaluated")

	c.JSON(http.StatusOK, models.EvaluateResponse{Inputs: in, Results: res})
}

// Import handles POST /api/v1/import.
func (h *DeskHandler) Import(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, res, matched := h.desk.ImportText(req.Text)
	resp := models.ImportResponse{Matched: matched, Inputs: in}
	if matched {
		resp.Results = &res
	}
	c.JSON(http.StatusOK, resp)
}

// State handles GET /api/v1/state.
func (h *DeskHandler) State(c *gin.Context) {
	in, res := h.desk.Snapshot()
	c.JSON(http.StatusOK, models.EvaluateResponse{Inputs: in, Results: res})
}

// SaveHistory handles POST /api/v1/history.
func (h *DeskHandler) SaveHistory(c *gin.Context) {
	saved := h.desk.SaveHistory()
	c.JSON(http.StatusOK, models.SaveHistoryResponse{
		Saved:   saved,
		Entries: len(h.desk.History()),
	})
}

// History handles GET /api/v1/history.
func (h *DeskHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, models.HistoryResponse{Entries: h.desk.History()})
}

// Report handles GET /api/v1/report.
func (h *DeskHandler) Report(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="Cashew_Trading_Decision_Report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.desk.Report()))
}
