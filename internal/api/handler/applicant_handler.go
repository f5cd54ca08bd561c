package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// ApplicantHandler handles HTTP requests for applicant intake and queries.
type ApplicantHandler struct {
	service ports.ApplicantService
}

func NewApplicantHandler(service ports.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{service: service}
}

// Create handles POST /v1/applicants.
//
// @Summary      Register a new applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicantRequest  true  "Applicant details"
// @Success      201   {object}  applicantResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applicants [post]
func (h *ApplicantHandler) Create(c echo.Context) error {
	var req createApplicantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	a, err := h.service.Create(c.Request().Context(), ports.CreateApplicantInput{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		Experience: req.Experience,
		Education:  req.Education,
		Skills:     req.Skills,
		ResumeURL:  req.ResumeURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toApplicantResponse(a))
}

// Get handles GET /v1/applicants/:id.
//
// @Summary      Get an applicant by id
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  applicantResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applicants/{id} [get]
func (h *ApplicantHandler) Get(c echo.Context) error {
	a, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(a))
}

// List handles GET /v1/applicants.
//
// @Summary      List applicants
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        state       query     string  false  "Filter by lifecycle state"
// @Param        department  query     string  false  "Filter by department"
// @Param        search      query     string  false  "Partial match on name or email"
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200  {object}  listApplicantsResponse
// @Router       /v1/applicants [get]
func (h *ApplicantHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListApplicantsInput{
		State:      c.QueryParam("state"),
		Department: c.QueryParam("department"),
		Search:     c.QueryParam("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	items := make([]applicantResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, toApplicantResponse(a))
	}

	return c.JSON(http.StatusOK, listApplicantsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}
