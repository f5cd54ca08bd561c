package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// LifecycleHandler handles the rejection and archival transitions.
type LifecycleHandler struct {
	rejections ports.RejectionService
	archival   ports.ArchiveService
}

func NewLifecycleHandler(rejections ports.RejectionService, archival ports.ArchiveService) *LifecycleHandler {
	return &LifecycleHandler{rejections: rejections, archival: archival}
}

// RejectEarly handles POST /v1/applicants/:id/reject.
//
// @Summary      Reject an applicant before onboarding started
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true   "Applicant id"
// @Param        body  body      rejectEarlyRequest  false  "Optional reason"
// @Success      200   {object}  applicantResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applicants/{id}/reject [post]
func (h *LifecycleHandler) RejectEarly(c echo.Context) error {
	var req rejectEarlyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return h.reject(c, req.Reason, h.rejections.RejectEarly)
}

// RejectDuringOnboarding handles POST /v1/applicants/:id/onboarding/reject.
//
// @Summary      Reject an applicant mid-onboarding
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Applicant id"
// @Param        body  body      rejectRequest  true  "Rejection reason"
// @Success      200   {object}  applicantResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applicants/{id}/onboarding/reject [post]
func (h *LifecycleHandler) RejectDuringOnboarding(c echo.Context) error {
	req, err := bindReject(c)
	if err != nil {
		return err
	}
	return h.reject(c, req.Reason, h.rejections.RejectDuringOnboarding)
}

// RejectEmployee handles POST /v1/applicants/:id/employment/reject.
//
// @Summary      Reject an onboarded employee
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Applicant id"
// @Param        body  body      rejectRequest  true  "Rejection reason"
// @Success      200   {object}  applicantResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applicants/{id}/employment/reject [post]
func (h *LifecycleHandler) RejectEmployee(c echo.Context) error {
	req, err := bindReject(c)
	if err != nil {
		return err
	}
	return h.reject(c, req.Reason, h.rejections.RejectEmployee)
}

// Archive handles POST /v1/applicants/:id/archive.
//
// @Summary      Archive an onboarded employee
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  applicantResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/applicants/{id}/archive [post]
func (h *LifecycleHandler) Archive(c echo.Context) error {
	a, err := h.archival.Archive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(a))
}

// Unarchive handles POST /v1/applicants/:id/unarchive.
//
// @Summary      Restore an archived employee
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  applicantResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/applicants/{id}/unarchive [post]
func (h *LifecycleHandler) Unarchive(c echo.Context) error {
	a, err := h.archival.Unarchive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(a))
}

func (h *LifecycleHandler) reject(c echo.Context, reason string, fn func(context.Context, string, string) (*domain.Applicant, error)) error {
	a, err := fn(c.Request().Context(), c.Param("id"), reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(a))
}

func bindReject(c echo.Context) (rejectRequest, error) {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}
