package handlers

import (
	"invoice_manager/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.companyService.GetCompanyInfo())
}
