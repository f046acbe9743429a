package server

import (
	"net/http"

	"github.com/StarickDosSantos/FactBP/internal/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetInvoiceSettings returns the current invoice defaults so a front
// end can pre-fill the creation form.
func (s *Server) GetInvoiceSettings(c *gin.Context) {
	defaults := s.invoiceCfg.Get()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"currencySuffix":    defaults.CurrencySuffix,
		"defaultTaxPercent": defaults.DefaultTaxPercent,
		"companyName":       defaults.CompanyName,
	}})
}

// ClearData removes every collection. Disabled in production.
func (s *Server) ClearData(c *gin.Context) {
	if s.cfg.IsProduction() {
		c.JSON(http.StatusForbidden, errorResponse{Error: errorPayload{
			Type:    "forbidden",
			Message: "data reset is disabled in production",
		}})
		return
	}

	if err := storage.ClearAll(c.Request.Context(), s.store); err != nil {
		AbortWithError(c, err)
		return
	}

	s.log.Warn("all collections cleared", zap.String("remote", c.ClientIP()))
	c.Status(http.StatusNoContent)
}
