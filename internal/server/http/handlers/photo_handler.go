package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strungco/stringmart/internal/server/http/dto"
)

// PhotoHandler manages order photo galleries.
type PhotoHandler struct {
	facade PhotoFacade
}

// NewPhotoHandler constructs PhotoHandler.
func NewPhotoHandler(facade PhotoFacade) *PhotoHandler {
	return &PhotoHandler{facade: facade}
}

// List handles GET /api/user/orders/:id/photos.
func (h *PhotoHandler) List(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	photos, err := h.facade.Photos(c.Request.Context(), orderID, CurrentUserID(c), CurrentRole(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, dto.PhotoResponse{ID: p.ID, URL: p.URL, DisplayOrder: p.DisplayOrder})
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/user/orders/:id/photos.
func (h *PhotoHandler) Add(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	photo, err := h.facade.AddPhoto(c.Request.Context(), orderID, CurrentUserID(c), CurrentRole(c), req.URL)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.PhotoResponse{ID: photo.ID, URL: photo.URL, DisplayOrder: photo.DisplayOrder})
}

// Remove handles DELETE /api/user/orders/:id/photos/:photoId.
func (h *PhotoHandler) Remove(c *gin.Context) {
	orderID := pathID(c, "id")
	photoID := pathID(c, "photoId")
	if orderID == 0 || photoID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemovePhoto(c.Request.Context(), orderID, photoID, CurrentUserID(c), CurrentRole(c)); err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Reorder handles PUT /api/user/orders/:id/photos.
func (h *PhotoHandler) Reorder(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ReorderPhotos(c.Request.Context(), orderID, CurrentUserID(c), CurrentRole(c), req.PhotoIDs); err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.Status(http.StatusOK)
}
