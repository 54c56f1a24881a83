package usecase

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
)

// PrescriptionUsecase manages uploaded prescriptions and the doctor directory.
type PrescriptionUsecase interface {
	// ListPrescriptions lists prescriptions; customers only ever see their own.
	ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) (*entity.PrescriptionPage, error)
	GetPrescription(ctx context.Context, id string) (*entity.Prescription, error)
	UploadPrescription(ctx context.Context, upload entity.PrescriptionUpload) (*entity.Prescription, error)
	// ValidatePrescription approves a prescription through the orchestrator.
	ValidatePrescription(ctx context.Context, id string) (json.RawMessage, error)
	DeletePrescription(ctx context.Context, id string) error

	ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*entity.DoctorPage, error)
}
