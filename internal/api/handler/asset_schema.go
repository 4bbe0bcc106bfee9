package handler

// createAssetRequest is the payload of POST /api/assets.
type createAssetRequest struct {
	Name         string  `json:"name"         validate:"required"`
	Type         string  `json:"type"         validate:"required,oneof=real_estate vehicle investment savings other"`
	Value        float64 `json:"value"        validate:"required,gt=0"`
	PurchaseDate string  `json:"purchaseDate" validate:"omitempty"`
	Appreciation float64 `json:"appreciation"`
	Description  string  `json:"description"`
}

// updateAssetRequest is the payload of PUT /api/assets/:id. Absent fields are
// left unchanged.
type updateAssetRequest struct {
	Name         *string  `json:"name"         validate:"omitempty,min=1"`
	Type         *string  `json:"type"         validate:"omitempty,oneof=real_estate vehicle investment savings other"`
	Value        *float64 `json:"value"        validate:"omitempty,gt=0"`
	PurchaseDate *string  `json:"purchaseDate" validate:"omitempty"`
	Appreciation *float64 `json:"appreciation"`
	Description  *string  `json:"description"`
}
