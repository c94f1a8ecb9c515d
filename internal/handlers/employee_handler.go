package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
	"hrms-lite/internal/services"
)

type EmployeeHandler struct {
	employees *services.EmployeeService
}

func NewEmployeeHandler(employees *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	employee, err := h.employees.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GET /api/employees/:id (business employee_id, not the storage id)
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var in models.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	employee, err := h.employees.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Employee %s deleted successfully", id)})
}
