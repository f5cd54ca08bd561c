package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// OnboardingHandler handles HTTP requests for the onboarding checklist.
type OnboardingHandler struct {
	service   ports.OnboardingService
	employees ports.EmployeeService
}

func NewOnboardingHandler(service ports.OnboardingService, employees ports.EmployeeService) *OnboardingHandler {
	return &OnboardingHandler{service: service, employees: employees}
}

// Accept handles POST /v1/applicants/:id/accept.
//
// @Summary      Accept an applicant into onboarding
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  acceptResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/applicants/{id}/accept [post]
func (h *OnboardingHandler) Accept(c echo.Context) error {
	result, err := h.service.Accept(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptResponse{
		Applicant: toApplicantResponse(result.Applicant),
		Record:    toRecordResponse(result.Record),
	})
}

// UpdateStep handles PATCH /v1/applicants/:id/onboarding/steps.
//
// @Summary      Toggle one onboarding checklist step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Applicant id"
// @Param        body  body      updateStepRequest  true  "Step edit"
// @Success      200   {object}  updateStepResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/applicants/{id}/onboarding/steps [patch]
func (h *OnboardingHandler) UpdateStep(c echo.Context) error {
	var req updateStepRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.UpdateStep(c.Request().Context(), ports.UpdateStepInput{
		ApplicantID: c.Param("id"),
		Step:        req.Step,
		Done:        *req.Done,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	resp := updateStepResponse{
		Record:         toRecordResponse(result.Record),
		AccountCreated: result.AccountCreated,
	}
	if result.Account != nil {
		emp := toEmployeeResponse(result.Account)
		resp.Employee = &emp
	}
	return c.JSON(http.StatusOK, resp)
}

// GetRecord handles GET /v1/applicants/:id/onboarding.
//
// @Summary      Get the onboarding checklist record
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  onboardingRecordResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applicants/{id}/onboarding [get]
func (h *OnboardingHandler) GetRecord(c echo.Context) error {
	rec, err := h.service.GetRecord(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecordResponse(rec))
}

// GetEmployee handles GET /v1/applicants/:id/employee.
//
// @Summary      Get the employee account provisioned for an applicant
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applicants/{id}/employee [get]
func (h *OnboardingHandler) GetEmployee(c echo.Context) error {
	acct, err := h.employees.GetByApplicant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(acct))
}
