package dto

// AddPhotoRequest attaches one photo URL to an order.
type AddPhotoRequest struct {
	URL string `json:"url"`
}

// ReorderPhotosRequest rewrites the gallery display order.
type ReorderPhotosRequest struct {
	PhotoIDs []int64 `json:"photo_ids"`
}

// PhotoResponse mirrors one gallery entry.
type PhotoResponse struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
}
