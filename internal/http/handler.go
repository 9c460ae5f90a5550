package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/allocation-service/internal/domain/dto"
	"github.com/guttosm/allocation-service/internal/repository"
	"github.com/guttosm/allocation-service/internal/service"
)

// defaultSyncOrderCap bounds the batch size accepted by the synchronous
// endpoint. Larger batches must go through the asynchronous analyses API.
const defaultSyncOrderCap = 50_000

// Handler provides HTTP handlers for allocation and analysis routes.
type Handler struct {
	analysisService service.AnalysisService
	syncOrderCap    int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSyncOrderCap sets the maximum batch size for synchronous allocation.
func WithSyncOrderCap(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.syncOrderCap = limit
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(analysisService service.AnalysisService, opts ...HandlerOption) *Handler {
	h := &Handler{
		analysisService: analysisService,
		syncOrderCap:    defaultSyncOrderCap,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Allocate handles POST /api/allocate requests.
//
// @Summary      Allocate orders to packages
// @Description  Runs the full allocation analysis synchronously and returns the report. Each order is matched to the candidate package with the highest efficiency score (fill fraction per cost unit); the report includes summary, statistics, and baseline comparison. Batches larger than the synchronous cap are rejected; use POST /api/analyses instead.
// @Tags         Allocation
// @Accept       json
// @Produce      json
// @Param        request body dto.AllocateRequest true "Orders and package catalog"
// @Success      200 {object} dto.SuccessResponse "Allocation report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or batch too large"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/allocate [post]
func (h *Handler) Allocate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AllocateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, validationMessage(err), err)
		return
	}

	if len(req.Orders) > h.syncOrderCap {
		builder.Error(http.StatusBadRequest,
			"batch exceeds synchronous limit of "+strconv.Itoa(h.syncOrderCap)+" orders; use POST /api/analyses", nil)
		return
	}

	orders, packages := req.ToModels()

	report, err := h.analysisService.RunSync(c.Request.Context(), orders, packages)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOrders), errors.Is(err, service.ErrNoPackages):
			builder.Error(http.StatusBadRequest, err.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, "Allocation analysis failed", err)
		}
		return
	}

	builder.SuccessOK(report)
}

// StartAnalysis handles POST /api/analyses requests.
//
// @Summary      Start an asynchronous allocation analysis
// @Description  Validates the batch, creates an analysis record, and processes the batch in the background. Poll GET /api/analyses/{id}/progress for progress and GET /api/analyses/{id} for the final report.
// @Tags         Analyses
// @Accept       json
// @Produce      json
// @Param        request body dto.AllocateRequest true "Orders and package catalog"
// @Success      202 {object} dto.SuccessResponse "Analysis accepted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyses [post]
func (h *Handler) StartAnalysis(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AllocateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, validationMessage(err), err)
		return
	}

	orders, packages := req.ToModels()

	id, err := h.analysisService.Start(c.Request.Context(), orders, packages)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOrders), errors.Is(err, service.ErrNoPackages):
			builder.Error(http.StatusBadRequest, err.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, "Failed to start analysis", err)
		}
		return
	}

	builder.SuccessAccepted(gin.H{
		"analysis_id": id,
		"status":      repository.StatusRunning,
	})
}

// GetAnalysis handles GET /api/analyses/:id requests.
//
// @Summary      Get an analysis
// @Description  Returns the analysis record: status, progress, and the full report once the run completes (or the partial report if it was cancelled).
// @Tags         Analyses
// @Produce      json
// @Param        id path string true "Analysis ID"
// @Success      200 {object} dto.SuccessResponse "Analysis record"
// @Failure      404 {object} dto.ErrorResponse "Analysis not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyses/{id} [get]
func (h *Handler) GetAnalysis(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	record, err := h.analysisService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			builder.Error(http.StatusNotFound, "Analysis not found", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to fetch analysis", err)
		return
	}

	builder.SuccessOK(record)
}

// GetAnalysisProgress handles GET /api/analyses/:id/progress requests.
//
// @Summary      Get analysis progress
// @Description  Returns the latest progress checkpoint for a running analysis. Checkpoints are emitted at chunk boundaries and at a fixed order stride, so percent_complete advances monotonically.
// @Tags         Analyses
// @Produce      json
// @Param        id path string true "Analysis ID"
// @Success      200 {object} dto.SuccessResponse "Progress snapshot"
// @Failure      404 {object} dto.ErrorResponse "Analysis not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyses/{id}/progress [get]
func (h *Handler) GetAnalysisProgress(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	record, err := h.analysisService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			builder.Error(http.StatusNotFound, "Analysis not found", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to fetch analysis", err)
		return
	}

	builder.SuccessOK(gin.H{
		"analysis_id": record.ID,
		"status":      record.Status,
		"progress":    record.Progress,
	})
}

// ListAnalyses handles GET /api/analyses requests.
//
// @Summary      List recent analyses
// @Description  Returns recent analysis records, newest first. Reports are omitted from the listing; fetch an individual analysis for its report.
// @Tags         Analyses
// @Produce      json
// @Param        limit query int false "Maximum number of records (default 20)"
// @Success      200 {object} dto.SuccessResponse "Analysis records"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid limit"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyses [get]
func (h *Handler) ListAnalyses(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = parsed
	}

	records, err := h.analysisService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to list analyses", err)
		return
	}

	builder.SuccessOK(gin.H{
		"analyses": records,
		"count":    len(records),
	})
}

// CancelAnalysis handles DELETE /api/analyses/:id requests.
//
// @Summary      Cancel a running analysis
// @Description  Requests cancellation of a running analysis. The batch stops at the next chunk boundary; results accumulated up to the last completed chunk are preserved as a partial report on the record.
// @Tags         Analyses
// @Produce      json
// @Param        id path string true "Analysis ID"
// @Success      202 {object} dto.SuccessResponse "Cancellation requested"
// @Failure      404 {object} dto.ErrorResponse "Analysis not running"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyses/{id} [delete]
func (h *Handler) CancelAnalysis(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.analysisService.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			builder.Error(http.StatusNotFound, "No running analysis with that id", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to cancel analysis", err)
		return
	}

	builder.SuccessAccepted(gin.H{
		"analysis_id": id,
		"status":      "cancelling",
		"requested":   time.Now().UTC(),
	})
}

// validationMessage maps binding and validation errors to a client-facing
// message without leaking struct internals.
func validationMessage(err error) string {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "Invalid request body"
}
