package server

import (
	"net/http"
	"strings"

	clientdomain "github.com/StarickDosSantos/FactBP/internal/client/domain"
	"github.com/gin-gonic/gin"
)

type saveClientRequest struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"morada"`
}

func (s *Server) ListClients(c *gin.Context) {
	clients, err := s.clientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": clients})
}

func (s *Server) SaveClient(c *gin.Context) {
	var req saveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	client, err := s.clientSvc.Save(c.Request.Context(), clientdomain.SaveClientRequest{
		ID:      strings.TrimSpace(req.ID),
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": client})
}

func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.clientSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
