package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "monedero/internal/errors"
	"monedero/internal/services"
	"monedero/internal/timeframe"
)

// SummaryHandler serves the aggregated transaction view.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryQuery represents the query parameters for the summary endpoint.
// Either a timeframe (with optional reference date) or an explicit from/to
// pair may be supplied; the explicit pair wins when both are present.
type SummaryQuery struct {
	Timeframe string `form:"timeframe" binding:"omitempty,timeframe"`
	Date      string `form:"date" binding:"omitempty,ymd_date"`
}

// GetSummary handles the aggregation request
// @Summary     Get financial summary
// @Description Aggregate the user's transactions over a timeframe or explicit date range: unified list, totals, balance, and expenses by category
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       timeframe query string false "Timeframe (all/day/week/month, default all)"
// @Param       date query string false "Reference date for the timeframe (YYYY-MM-DD, default today)"
// @Param       from query string false "Explicit range start (YYYY-MM-DD, requires to)"
// @Param       to query string false "Explicit range end (YYYY-MM-DD, requires from)"
// @Success     200 {object} services.Summary "Aggregated summary"
// @Failure     400 {object} ErrorResponse "Invalid timeframe, date, or range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rng, err := parseRangeQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if rng == nil {
		tf, err := timeframe.Parse(query.Timeframe)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}

		ref := time.Now()
		if query.Date != "" {
			ref, err = time.ParseInLocation("2006-01-02", query.Date, time.Local)
			if err != nil {
				respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a valid YYYY-MM-DD date"))
				return
			}
		}

		rng = timeframe.Resolve(tf, ref)
	}

	summary, err := h.summaryService.Aggregate(userID, rng)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary, "range": rng})
}
