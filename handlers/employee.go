package handlers

import (
	"net/http"

	"barberbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateEmployee adds a staff member to the caller's establishment.
func (h *EstablishmentHandler) CreateEmployee(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req models.Employee
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid employee payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	emp, err := h.Service.CreateEmployee(estID, req)
	if err != nil {
		logger.Error("Employee creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee updates a staff member.
func (h *EstablishmentHandler) UpdateEmployee(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req models.Employee
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid employee payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("employeeId")

	emp, err := h.Service.UpdateEmployee(estID, req)
	if err != nil {
		logger.Error("Employee update failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee removes a staff member.
func (h *EstablishmentHandler) DeleteEmployee(c *gin.Context) {
	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteEmployee(estID, c.Param("employeeId")); err != nil {
		getLogger(c).Error("Employee deletion failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// ListEmployees returns the establishment's staff.
func (h *EstablishmentHandler) ListEmployees(c *gin.Context) {
	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	emps, err := h.Service.ListEmployees(estID)
	if err != nil {
		getLogger(c).Error("Failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}
	c.JSON(http.StatusOK, emps)
}
