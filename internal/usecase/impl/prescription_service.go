package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// pdfMagic opens every PDF document.
var pdfMagic = []byte("%PDF-")

// prescriptionService implements the PrescriptionUsecase interface.
type prescriptionService struct {
	prescriptions service.PrescriptionService
	orchestrator  service.OrchestratorService
	session       usecase.SessionUsecase
	logger        *slog.Logger
}

// NewPrescriptionService is the constructor for prescriptionService.
func NewPrescriptionService(
	prescriptions service.PrescriptionService,
	orchestrator service.OrchestratorService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.PrescriptionUsecase {
	return &prescriptionService{
		prescriptions: prescriptions,
		orchestrator:  orchestrator,
		session:       session,
		logger:        logger,
	}
}

// current returns the signed-in identity, or ErrUnauthenticated.
func (srv *prescriptionService) current(ctx context.Context) (*entity.Identity, error) {
	identity := srv.session.Identity()
	if identity == nil || !srv.session.IsAuthenticated(ctx) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return identity, nil
}

// ListPrescriptions lists prescriptions. Customers only ever see their own.
func (srv *prescriptionService) ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) (*entity.PrescriptionPage, error) {
	identity, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}

	own := !identity.Role.IsAdmin()
	if own {
		filter.DNI = identity.SubjectID
	}

	page, err := srv.prescriptions.ListPrescriptions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	if own {
		mine := page.Items[:0]
		for _, item := range page.Items {
			if item.PatientDNI == identity.SubjectID {
				mine = append(mine, item)
			}
		}
		page.Items = mine
	}

	return page, nil
}

func (srv *prescriptionService) GetPrescription(ctx context.Context, id string) (*entity.Prescription, error) {
	identity, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}

	prescription, err := srv.prescriptions.GetPrescription(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get prescription %s", id)
	}

	if !identity.Role.IsAdmin() && prescription.PatientDNI != identity.SubjectID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "prescription belongs to another patient")
	}

	return prescription, nil
}

// UploadPrescription accepts PDF documents only.
func (srv *prescriptionService) UploadPrescription(ctx context.Context, upload entity.PrescriptionUpload) (*entity.Prescription, error) {
	if _, err := srv.current(ctx); err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(upload.Content, pdfMagic) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"archivoPDF": "el archivo debe ser un PDF",
		}))
	}
	if strings.TrimSpace(upload.FileName) == "" {
		upload.FileName = "receta.pdf"
	}

	prescription, err := srv.prescriptions.UploadPrescription(ctx, upload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload prescription")
	}

	deliverycontext.LoggerFromContext(ctx, srv.logger).Info("Prescription uploaded",
		slog.String("prescriptionID", prescription.ID),
		slog.Int("size", len(upload.Content)),
	)

	return prescription, nil
}

// ValidatePrescription runs the orchestrated validation, which cross-checks the doctor registry.
func (srv *prescriptionService) ValidatePrescription(ctx context.Context, id string) (json.RawMessage, error) {
	if _, err := srv.current(ctx); err != nil {
		return nil, err
	}

	result, err := srv.orchestrator.ValidatePrescription(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate prescription %s", id)
	}

	return result, nil
}

func (srv *prescriptionService) DeletePrescription(ctx context.Context, id string) error {
	if _, err := srv.GetPrescription(ctx, id); err != nil {
		return err
	}

	if err := srv.prescriptions.DeletePrescription(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete prescription %s", id)
	}

	return nil
}

func (srv *prescriptionService) ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*entity.DoctorPage, error) {
	page, err := srv.prescriptions.ListDoctors(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}

	return page, nil
}
