package entity

import (
	"encoding/json"
	"slices"
	"time"
)

// ProductTypes is the fixed catalogue of product types the products service accepts.
//
//nolint:gochecknoglobals
var ProductTypes = []string{
	"Antibiotico",
	"Antiinflamatorio",
	"Antihistaminico",
	"Antimicotico",
	"Dermocosmetica",
	"Antigripal",
	"Analgesico",
	"Vitaminas",
	"Broncodilatador",
	"Antiacido",
}

// IsProductType reports whether t is one of ProductTypes.
func IsProductType(t string) bool {
	return slices.Contains(ProductTypes, t)
}

// Product is a catalogue entry served by the products service.
type Product struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"nombre"`
	Type                 string    `json:"tipo"`
	Price                float64   `json:"precio"`
	Stock                int       `json:"stock"`
	RequiresPrescription bool      `json:"requiere_receta"`
	CreatedAt            time.Time `json:"fecha_creacion"`
	UpdatedAt            time.Time `json:"fecha_actualizacion"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pagesize"`
	Products []Product `json:"productos"`
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name                 string  `json:"nombre" validate:"required"`
	Type                 string  `json:"tipo" validate:"required,producttype"`
	Price                float64 `json:"precio" validate:"gt=0"`
	Stock                int     `json:"stock" validate:"gte=0"`
	RequiresPrescription bool    `json:"requiere_receta"`
}

// ProductPatch is the payload for a partial product update.
type ProductPatch struct {
	Name                 *string  `json:"nombre,omitempty"`
	Type                 *string  `json:"tipo,omitempty" validate:"omitempty,producttype"`
	Price                *float64 `json:"precio,omitempty" validate:"omitempty,gt=0"`
	Stock                *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	RequiresPrescription *bool    `json:"requiere_receta,omitempty"`
}

// ProductFilter selects one of the listing endpoints. At most one criterion is honoured,
// in the order Name, Type, RequiresPrescription, MinStock.
type ProductFilter struct {
	Name                 string
	Type                 string
	RequiresPrescription *bool
	MinStock             *int
	Page                 int
	PageSize             int
}

// OfferDetail is the discount applied to one product inside an offer.
type OfferDetail struct {
	ID        int64   `json:"id,omitempty"`
	ProductID int64   `json:"producto_id" validate:"required"`
	Discount  float64 `json:"descuento" validate:"gt=0,lte=100"`
}

// Offer groups product discounts under one expiry date.
type Offer struct {
	ID        int64         `json:"id"`
	ExpiresOn string        `json:"fecha_vencimiento"`
	CreatedAt string        `json:"fecha_creacion"`
	UpdatedAt string        `json:"fecha_actualizacion"`
	Details   []OfferDetail `json:"detalles"`
}

// OfferInput is the payload for creating or replacing an offer.
type OfferInput struct {
	Details   []OfferDetail `json:"detalles" validate:"required,min=1,dive"`
	ExpiresOn string        `json:"fecha_vencimiento" validate:"required"`
}

// Purchase is a purchase record as returned by the users/purchases service.
// Its exact shape is owned by that service, so it is kept raw.
type Purchase = json.RawMessage

// PurchaseInput is the direct purchase payload accepted by the purchases service.
type PurchaseInput struct {
	UserID     string  `json:"usuarioId"`
	ProductIDs []int64 `json:"productos"`
	Quantities []int   `json:"cantidades"`
}
