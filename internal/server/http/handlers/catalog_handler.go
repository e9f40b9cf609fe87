package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strungco/stringmart/internal/server/http/dto"
)

// CatalogHandler serves the public product and package lists.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Products handles GET /api/products.
func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	c.JSON(http.StatusOK, resp)
}

// Packages handles GET /api/packages.
func (h *CatalogHandler) Packages(c *gin.Context) {
	packages, err := h.facade.Packages(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, dto.PackageResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Uses:         p.Uses,
			ValidityDays: p.ValidityDays,
		})
	}
	c.JSON(http.StatusOK, resp)
}
