package rest

import (
	"context"
	"net/http"
	"time"

	"streamPulse/domain"
	"streamPulse/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	CohortStore interface {
		Create(ctx context.Context, cohort *domain.Cohort) error
		FindAll(ctx context.Context) ([]domain.Cohort, error)
	}

	ComplaintThemeStore interface {
		Create(ctx context.Context, theme *domain.ComplaintTheme) error
		FindAll(ctx context.Context) ([]domain.ComplaintTheme, error)
	}

	ProductionIssueStore interface {
		Create(ctx context.Context, issue *domain.ProductionIssue) error
		FindAll(ctx context.Context) ([]domain.ProductionIssue, error)
	}

	ContentShowStore interface {
		Create(ctx context.Context, show *domain.ContentShow) error
		FindAll(ctx context.Context) ([]domain.ContentShow, error)
	}

	SnapshotHandler struct {
		cohorts  CohortStore
		themes   ComplaintThemeStore
		issues   ProductionIssueStore
		shows    ContentShowStore
		validate *validator.Validate
		timeout  time.Duration
	}
)

func NewSnapshotHandler(
	cohorts CohortStore,
	themes ComplaintThemeStore,
	issues ProductionIssueStore,
	shows ContentShowStore,
) *SnapshotHandler {
	return &SnapshotHandler{
		cohorts:  cohorts,
		themes:   themes,
		issues:   issues,
		shows:    shows,
		validate: validator.New(),
		timeout:  10 * time.Second,
	}
}

type CreateCohortRequest struct {
	ID                   string            `json:"id" validate:"required"`
	Name                 string            `json:"name" validate:"required"`
	Size                 int               `json:"size" validate:"required,gt=0"`
	RiskScore            float64           `json:"risk_score" validate:"gte=0,lte=1"`
	ProjectedChurners30d int               `json:"projected_churners_30d" validate:"gte=0"`
	FinancialImpact30d   float64           `json:"financial_impact_30d" validate:"gte=0"`
	Attributes           map[string]string `json:"attributes"`
}

type CreateComplaintThemeRequest struct {
	ID             string            `json:"id" validate:"required"`
	Name           string            `json:"name" validate:"required"`
	Volume         int               `json:"volume" validate:"gte=0"`
	SentimentScore float64           `json:"sentiment_score" validate:"gte=-1,lte=1"`
	Complexity     string            `json:"complexity" validate:"required,oneof=low medium high"`
	RevenueImpact  float64           `json:"revenue_impact" validate:"gte=0"`
	Attributes     map[string]string `json:"attributes"`
}

type CreateProductionIssueRequest struct {
	ID          string  `json:"id" validate:"required"`
	Severity    string  `json:"severity" validate:"required,oneof=critical high medium low"`
	DelayDays   int     `json:"delay_days" validate:"gte=0"`
	CostOverrun float64 `json:"cost_overrun" validate:"gte=0"`
	ShowID      string  `json:"show_id"`
	Status      string  `json:"status" validate:"required,oneof=open in_progress resolved"`
}

type CreateContentShowRequest struct {
	ID           string  `json:"id" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Genre        string  `json:"genre" validate:"required"`
	Region       string  `json:"region" validate:"required"`
	ViewingHours float64 `json:"viewing_hours" validate:"gte=0"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
}

func toJSONMap(attrs map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

func (h *SnapshotHandler) GetAllCohorts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cohorts, err := h.cohorts.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all cohorts", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cohorts))
}

func (h *SnapshotHandler) CreateCohort(c echo.Context) error {
	var req CreateCohortRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind cohort request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cohort := domain.Cohort{
		ID:                   req.ID,
		Name:                 req.Name,
		Size:                 req.Size,
		RiskScore:            req.RiskScore,
		ProjectedChurners30d: req.ProjectedChurners30d,
		FinancialImpact30d:   req.FinancialImpact30d,
		Attributes:           toJSONMap(req.Attributes),
		CreatedAt:            time.Now().UTC(),
	}

	if err := h.cohorts.Create(ctx, &cohort); err != nil {
		logger.Error("failed to create cohort", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(cohort))
}

func (h *SnapshotHandler) GetAllComplaintThemes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	themes, err := h.themes.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all complaint themes", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(themes))
}

func (h *SnapshotHandler) CreateComplaintTheme(c echo.Context) error {
	var req CreateComplaintThemeRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind complaint theme request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	theme := domain.ComplaintTheme{
		ID:             req.ID,
		Name:           req.Name,
		Volume:         req.Volume,
		SentimentScore: req.SentimentScore,
		Complexity:     req.Complexity,
		RevenueImpact:  req.RevenueImpact,
		Attributes:     toJSONMap(req.Attributes),
		CreatedAt:      time.Now().UTC(),
	}

	if err := h.themes.Create(ctx, &theme); err != nil {
		logger.Error("failed to create complaint theme", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(theme))
}

func (h *SnapshotHandler) GetAllProductionIssues(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	issues, err := h.issues.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all production issues", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(issues))
}

func (h *SnapshotHandler) CreateProductionIssue(c echo.Context) error {
	var req CreateProductionIssueRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind production issue request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	issue := domain.ProductionIssue{
		ID:          req.ID,
		Severity:    req.Severity,
		DelayDays:   req.DelayDays,
		CostOverrun: req.CostOverrun,
		ShowID:      req.ShowID,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.issues.Create(ctx, &issue); err != nil {
		logger.Error("failed to create production issue", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(issue))
}

func (h *SnapshotHandler) GetAllContentShows(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	shows, err := h.shows.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all content shows", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(shows))
}

func (h *SnapshotHandler) CreateContentShow(c echo.Context) error {
	var req CreateContentShowRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind content show request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	show := domain.ContentShow{
		ID:           req.ID,
		Title:        req.Title,
		Genre:        req.Genre,
		Region:       req.Region,
		ViewingHours: req.ViewingHours,
		Rating:       req.Rating,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.shows.Create(ctx, &show); err != nil {
		logger.Error("failed to create content show", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(show))
}
