package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/middleware"
	"github.com/noah-isme/hr-records-api/internal/service"
	"github.com/noah-isme/hr-records-api/pkg/response"
)

// BenefitHandler exposes the benefits catalogue and employee enrollments.
type BenefitHandler struct {
	benefits *service.BenefitService
}

// NewBenefitHandler constructs BenefitHandler.
func NewBenefitHandler(benefits *service.BenefitService) *BenefitHandler {
	return &BenefitHandler{benefits: benefits}
}

// Catalogue godoc
// @Summary List benefits
// @Tags Benefits
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /benefits [get]
func (h *BenefitHandler) Catalogue(c *gin.Context) {
	benefits, err := h.benefits.ListBenefits(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, benefits, nil)
}

// ListForEmployee godoc
// @Summary List an employee's benefits
// @Tags Benefits
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id}/benefits [get]
func (h *BenefitHandler) ListForEmployee(c *gin.Context) {
	benefits, err := h.benefits.ListForEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, benefits, nil)
}

// Enroll godoc
// @Summary Enroll an employee in a benefit
// @Tags Benefits
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param payload body dto.EnrollBenefitRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} validation.Problem
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /employees/{id}/benefits [post]
func (h *BenefitHandler) Enroll(c *gin.Context) {
	req, _ := middleware.Argument[dto.EnrollBenefitRequest](c, argBenefitRequest)
	enrollment, err := h.benefits.Enroll(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, c.Request.URL.Path+"/"+enrollment.BenefitID, enrollment)
}

// Unenroll godoc
// @Summary Remove a benefit from an employee
// @Tags Benefits
// @Param id path string true "Employee ID"
// @Param benefitId path string true "Benefit ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /employees/{id}/benefits/{benefitId} [delete]
func (h *BenefitHandler) Unenroll(c *gin.Context) {
	if err := h.benefits.Unenroll(c.Request.Context(), c.Param("id"), c.Param("benefitId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
