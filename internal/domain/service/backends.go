// Package service declares the domain-facing contracts of external collaborators.
package service

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
)

// LoginRequest authenticates by email or DNI; exactly one of them should be set.
type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required_without=DNI,omitempty,email"`
	DNI      string `json:"dni,omitempty" validate:"required_without=Email,omitempty,numeric,len=8"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a customer account.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Surname  string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	District string `json:"distrito" validate:"required"`
	DNI      string `json:"dni" validate:"required,numeric,len=8"`
}

// UpdateProfileRequest changes fields of the current account; empty fields are left untouched.
type UpdateProfileRequest struct {
	Name     string `json:"nombre,omitempty"`
	Surname  string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	District string `json:"distrito,omitempty"`
}

// UsersService is the users/purchases backend.
type UsersService interface {
	Echo(ctx context.Context) error
	Register(ctx context.Context, req RegisterRequest) error
	// Login returns the raw bearer credential issued by the backend.
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context) (*entity.Profile, error)
	UpdateMe(ctx context.Context, req UpdateProfileRequest) error
	DeleteMe(ctx context.Context) error
	ListUsers(ctx context.Context) (json.RawMessage, error)

	ListPurchases(ctx context.Context) ([]entity.Purchase, error)
	MyPurchases(ctx context.Context) ([]entity.Purchase, error)
	CreatePurchase(ctx context.Context, purchase entity.PurchaseInput) (json.RawMessage, error)
}

// CatalogService is the products/offers backend.
type CatalogService interface {
	Echo(ctx context.Context) error
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListOffers(ctx context.Context) ([]entity.Offer, error)
	GetOffer(ctx context.Context, id int64) (*entity.Offer, error)
	CreateOffer(ctx context.Context, input entity.OfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, id int64, input entity.OfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, id int64) error
}

// PrescriptionService is the prescriptions/doctors backend.
type PrescriptionService interface {
	Echo(ctx context.Context) error
	ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) (*entity.PrescriptionPage, error)
	GetPrescription(ctx context.Context, id string) (*entity.Prescription, error)
	UploadPrescription(ctx context.Context, upload entity.PrescriptionUpload) (*entity.Prescription, error)
	ValidatePrescription(ctx context.Context, id string) error
	DeletePrescription(ctx context.Context, id string) error
	ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*entity.DoctorPage, error)
}

// AnalyticsService is the analytics backend behind the admin dashboard.
type AnalyticsService interface {
	Echo(ctx context.Context) error
	DailySales(ctx context.Context) (entity.Report, error)
	TopProducts(ctx context.Context) (entity.Report, error)
	TopUsers(ctx context.Context) (entity.Report, error)
	ProductsWithoutSales(ctx context.Context) (entity.Report, error)
	Ingest(ctx context.Context, source entity.IngestSource) (entity.Report, error)
}

// OrchestratorService composes cross-service operations.
type OrchestratorService interface {
	Echo(ctx context.Context) error
	// RegisterPurchase places an order; a missing prescription surfaces as an *errors.UpstreamError.
	RegisterPurchase(ctx context.Context, purchase entity.OrchestratedPurchase) (json.RawMessage, error)
	MyDetailedPurchases(ctx context.Context) (json.RawMessage, error)
	ValidatePrescription(ctx context.Context, id string) (json.RawMessage, error)
}
