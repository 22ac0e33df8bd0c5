package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"streamPulse/business/campaign"
	"streamPulse/business/forecast"
	"streamPulse/business/rootcause"
	"streamPulse/domain"
	"streamPulse/pkg/logger"
	"streamPulse/pkg/metrics"
	jsonres "streamPulse/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	ParetoService interface {
		Compute(dimension string, items []domain.MetricItem) (domain.ParetoResult, error)
		ValidatePrinciple(results map[string]domain.ParetoResult) domain.ParetoValidation
	}

	AnalyzerService interface {
		Analyze(ctx context.Context, opts rootcause.AnalyzeOptions) (domain.RootCauseReport, error)
	}

	ForecastService interface {
		Forecast(ctx context.Context, req forecast.Request) (domain.Forecast, error)
	}

	CampaignService interface {
		Generate(ctx context.Context, req campaign.Request) (domain.Campaign, error)
	}

	AnalyticsHandler struct {
		paretoService   ParetoService
		analyzerService AnalyzerService
		forecastService ForecastService
		campaignService CampaignService
		validate        *validator.Validate
		timeout         time.Duration
	}
)

func NewAnalyticsHandler(
	paretoService ParetoService,
	analyzerService AnalyzerService,
	forecastService ForecastService,
	campaignService CampaignService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		paretoService:   paretoService,
		analyzerService: analyzerService,
		forecastService: forecastService,
		campaignService: campaignService,
		validate:        validator.New(),
		timeout:         15 * time.Second,
	}
}

type MetricItemRequest struct {
	ID        string  `json:"id" validate:"required"`
	Label     string  `json:"label"`
	Magnitude float64 `json:"magnitude" validate:"gte=0"`
	Category  string  `json:"category"`
}

type ComputeParetoRequest struct {
	Dimension string              `json:"dimension" validate:"required"`
	Items     []MetricItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ValidateParetoRequest struct {
	Dimensions map[string][]MetricItemRequest `json:"dimensions" validate:"required,min=1"`
}

type RootCauseRequest struct {
	CohortIDs              []string `json:"cohort_ids"`
	IncludeRecommendations *bool    `json:"include_recommendations"`
	IncludePareto          bool     `json:"include_pareto"`
}

type ForecastRequest struct {
	BudgetConstraint *float64 `json:"budget_constraint"`
	TimelineMonths   int      `json:"timeline_months" validate:"required,gt=0"`
	Scenario         string   `json:"scenario" validate:"required,oneof=conservative moderate aggressive"`
}

type CampaignRequest struct {
	CohortID     string   `json:"cohort_id" validate:"required"`
	Budget       *float64 `json:"budget"`
	TimelineDays int      `json:"timeline_days" validate:"gte=0"`
}

func toMetricItems(reqs []MetricItemRequest) []domain.MetricItem {
	items := make([]domain.MetricItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, domain.MetricItem{
			ID:        r.ID,
			Label:     r.Label,
			Magnitude: r.Magnitude,
			Category:  r.Category,
		})
	}
	return items
}

func (h *AnalyticsHandler) ComputePareto(c echo.Context) error {
	defer observe("compute_pareto", time.Now())

	var req ComputeParetoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("VALIDATION_FAILED", err.Error(), nil))
	}

	result, err := h.paretoService.Compute(req.Dimension, toMetricItems(req.Items))
	if err != nil {
		return h.analyticsError(c, "compute_pareto", err)
	}

	metrics.AnalysisRequests.WithLabelValues("compute_pareto", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(result))
}

func (h *AnalyticsHandler) ValidatePareto(c echo.Context) error {
	defer observe("validate_pareto", time.Now())

	var req ValidateParetoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("VALIDATION_FAILED", err.Error(), nil))
	}

	results := make(map[string]domain.ParetoResult, len(req.Dimensions))
	for dimension, items := range req.Dimensions {
		result, err := h.paretoService.Compute(dimension, toMetricItems(items))
		if err != nil {
			return h.analyticsError(c, "validate_pareto", err)
		}
		results[dimension] = result
	}

	verdict := h.paretoService.ValidatePrinciple(results)

	metrics.AnalysisRequests.WithLabelValues("validate_pareto", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(map[string]interface{}{
		"results": results,
		"verdict": verdict,
	}))
}

// StoredPareto decomposes the stored snapshot dimensions instead of a
// caller-supplied item list.
func (h *AnalyticsHandler) StoredPareto(c echo.Context) error {
	defer observe("stored_pareto", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.analyzerService.Analyze(ctx, rootcause.AnalyzeOptions{
		IncludeRecommendations: false,
		IncludePareto:          true,
	})
	if err != nil {
		return h.analyticsError(c, "stored_pareto", err)
	}

	metrics.AnalysisRequests.WithLabelValues("stored_pareto", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(map[string]interface{}{
		"results": report.Pareto,
		"verdict": report.ParetoVerdict,
	}))
}

func (h *AnalyticsHandler) AnalyzeRootCause(c echo.Context) error {
	defer observe("root_cause", time.Now())

	var req RootCauseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}

	opts := rootcause.AnalyzeOptions{
		CohortIDs:              req.CohortIDs,
		IncludeRecommendations: true,
		IncludePareto:          req.IncludePareto,
	}
	if req.IncludeRecommendations != nil {
		opts.IncludeRecommendations = *req.IncludeRecommendations
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.analyzerService.Analyze(ctx, opts)
	if err != nil {
		return h.analyticsError(c, "root_cause", err)
	}

	metrics.AnalysisRequests.WithLabelValues("root_cause", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(report))
}

func (h *AnalyticsHandler) Forecast(c echo.Context) error {
	defer observe("forecast", time.Now())

	var req ForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("VALIDATION_FAILED", err.Error(), nil))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.forecastService.Forecast(ctx, forecast.Request{
		BudgetConstraint: req.BudgetConstraint,
		TimelineMonths:   req.TimelineMonths,
		Scenario:         req.Scenario,
	})
	if err != nil {
		return h.analyticsError(c, "forecast", err)
	}

	metrics.AnalysisRequests.WithLabelValues("forecast", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(result))
}

func (h *AnalyticsHandler) GenerateCampaign(c echo.Context) error {
	defer observe("campaign", time.Now())

	var req CampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("VALIDATION_FAILED", err.Error(), nil))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.campaignService.Generate(ctx, campaign.Request{
		CohortID:     req.CohortID,
		Budget:       req.Budget,
		TimelineDays: req.TimelineDays,
	})
	if err != nil {
		return h.analyticsError(c, "campaign", err)
	}

	metrics.AnalysisRequests.WithLabelValues("campaign", "ok").Inc()
	return c.JSON(http.StatusOK, jsonres.Success(result))
}

// analyticsError translates engine errors into the failure envelope.
func (h *AnalyticsHandler) analyticsError(c echo.Context, operation string, err error) error {
	metrics.AnalysisRequests.WithLabelValues(operation, "error").Inc()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error("NOT_FOUND", err.Error(), nil))
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrInvalidMagnitude),
		errors.Is(err, domain.ErrInvalidScenario),
		errors.Is(err, domain.ErrInvalidTimeline),
		errors.Is(err, domain.ErrInvalidBudget):
		return c.JSON(http.StatusBadRequest, jsonres.Error("INVALID_INPUT", err.Error(), nil))
	default:
		logger.Error("analytics operation failed", "operation", operation, "error", err)
		return c.JSON(http.StatusInternalServerError, jsonres.Error("INTERNAL_ERROR", err.Error(), nil))
	}
}

func observe(operation string, start time.Time) {
	metrics.AnalysisLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
