package server

import (
	"net/http"
	"os"

	invoicedomain "github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type createInvoiceItem struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Quantity    float64 `json:"quantidade"`
	Price       float64 `json:"preco"`
}

type createInvoiceRequest struct {
	Customer        string              `json:"cliente"`
	Items           []createInvoiceItem `json:"artigos"`
	TaxPercent      float64             `json:"imposto"`
	DiscountPercent float64             `json:"desconto"`
	LogoURI         string              `json:"logoUri"`
}

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (s *Server) GetInvoice(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	items := make([]invoicedomain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoicedomain.LineItem{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	invoice, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		Customer:        req.Customer,
		Items:           items,
		TaxPercent:      req.TaxPercent,
		DiscountPercent: req.DiscountPercent,
		LogoURI:         req.LogoURI,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": invoice})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportInvoicePDF renders the invoice and streams the document back.
// The file also stays on disk under the export directory.
func (s *Server) ExportInvoicePDF(c *gin.Context) {
	path, err := s.invoiceSvc.ExportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if _, err := os.Stat(path); err != nil {
		AbortWithError(c, err)
		return
	}

	c.FileAttachment(path, "factura_"+c.Param("id")+".pdf")
}
