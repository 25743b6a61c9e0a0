package handlers

import (
	"errors"
	"invoice_manager/internal/models"
	"invoice_manager/internal/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuotationHandler struct {
	quotationService services.QuotationService
	invoiceService   services.InvoiceService
}

func NewQuotationHandler(quotationService services.QuotationService, invoiceService services.InvoiceService) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		invoiceService:   invoiceService,
	}
}

func (h *QuotationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	search := c.Query("search")

	result, err := h.quotationService.ListQuotations(page, perPage, search)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation id"})
		return
	}

	quotation, err := h.quotationService.GetQuotationByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotation)
}

func (h *QuotationHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	quotation, err := h.quotationService.GetQuotationByNumber(number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotation)
}

func (h *QuotationHandler) Create(c *gin.Context) {
	var quotation models.Quotation
	if err := c.ShouldBindJSON(&quotation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.quotationService.CreateQuotation(&quotation); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quotation)
}

// Update edits a quotation, or promotes it to a tax invoice when the payload
// carries isInvoice. Promotion goes through the invoice service so the GST
// preconditions cannot be bypassed.
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation id"})
		return
	}

	var incoming models.Quotation
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var updated *models.Quotation
	if incoming.IsInvoice {
		updated, err = h.invoiceService.PromoteQuotation(id, &incoming)
	} else {
		updated, err = h.quotationService.UpdateQuotation(id, &incoming)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation id"})
		return
	}

	if err := h.quotationService.DeleteQuotation(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
}

// BuildInvoice previews the invoice derived from a quotation number without
// persisting it; the client saves via PUT once the user confirms.
func (h *QuotationHandler) BuildInvoice(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a quotation number"})
		return
	}
	gstin := c.Query("gstin")

	invoice, err := h.invoiceService.BuildInvoice(number, gstin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps the domain error kinds onto HTTP statuses. Nothing here
// is fatal; every error is contained in its request.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.Is(err, models.ErrIncompleteDocument):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyInvoice):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
