package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/middleware"
	"github.com/noah-isme/hr-records-api/internal/service"
	"github.com/noah-isme/hr-records-api/pkg/response"
)

// Names under which the validation middleware binds handler arguments.
const (
	argEmployeeRequest = "employeeRequest"
	argBenefitRequest  = "benefitRequest"
	argQuery           = "query"
)

// EmployeeHandler exposes employee endpoints.
type EmployeeHandler struct {
	employees *service.EmployeeService
	exports   *service.ExportService
}

// NewEmployeeHandler constructs EmployeeHandler.
func NewEmployeeHandler(employees *service.EmployeeService, exports *service.ExportService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, exports: exports}
}

// List godoc
// @Summary List employees
// @Tags Employees
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param recordsPerPage query int false "Page size (default 100, max 100)"
// @Param firstNameContains query string false "First name substring"
// @Param lastNameContains query string false "Last name substring"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} validation.Problem
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	query, _ := middleware.Argument[dto.GetAllEmployeesRequest](c, argQuery)
	employees, pagination, err := h.employees.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employees, pagination)
}

// Get godoc
// @Summary Get employee
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, cacheHit, err := h.employees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, employee, nil, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body dto.CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} validation.Problem
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	req, _ := middleware.Argument[dto.CreateEmployeeRequest](c, argEmployeeRequest)
	employee, err := h.employees.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, c.Request.URL.Path+"/"+employee.ID, employee)
}

// Update godoc
// @Summary Update employee contact details
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param payload body dto.UpdateEmployeeRequest true "Employee payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} validation.Problem
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	req, _ := middleware.Argument[dto.UpdateEmployeeRequest](c, argEmployeeRequest)
	employee, err := h.employees.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee, nil)
}

// Delete godoc
// @Summary Delete employee
// @Tags Employees
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export employee roster
// @Tags Employees
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} validation.Problem
// @Router /employees/export [get]
func (h *EmployeeHandler) Export(c *gin.Context) {
	query, _ := middleware.Argument[dto.ExportEmployeesRequest](c, argQuery)
	result, err := h.exports.EmployeeRoster(c.Request.Context(), query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}
