package domain

import (
	"errors"
	"time"
)

// AssetType classifies an asset record.
type AssetType string

const (
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
	AssetInvestment AssetType = "investment"
	AssetSavings    AssetType = "savings"
	AssetOther      AssetType = "other"
)

var ErrAssetNotFound = errors.New("asset not found")

// IsValid reports whether t is one of the known asset types.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetRealEstate, AssetVehicle, AssetInvestment, AssetSavings, AssetOther:
		return true
	}
	return false
}

// IsLiquid reports whether assets of this type count toward emergency-fund
// coverage. Only savings-type assets are treated as cash-like.
func (t AssetType) IsLiquid() bool {
	return t == AssetSavings
}

// Asset is a valued holding owned by exactly one user.
type Asset struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserID       string    `json:"user" bson:"user_id"`
	Name         string    `json:"name" bson:"name"`
	Type         AssetType `json:"type" bson:"type"`
	Value        float64   `json:"value" bson:"value"`
	PurchaseDate time.Time `json:"purchaseDate" bson:"purchase_date"`
	Appreciation float64   `json:"appreciation" bson:"appreciation"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}
