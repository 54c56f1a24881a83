package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prescriptionServiceFixtures struct {
	service       usecase.PrescriptionUsecase
	prescriptions *mockService.MockPrescriptionService
	orchestrator  *mockService.MockOrchestratorService
	session       *sessionManager
	clock         *testClock
}

func createTestPrescriptionService(t *testing.T) prescriptionServiceFixtures {
	prescriptions := mockService.NewMockPrescriptionService(t)
	orchestrator := mockService.NewMockOrchestratorService(t)
	clock := newTestClock()
	session := newTestSession(newBackend(t).Open(), clock)

	return prescriptionServiceFixtures{
		service:       NewPrescriptionService(prescriptions, orchestrator, session, discardLogger()),
		prescriptions: prescriptions,
		orchestrator:  orchestrator,
		session:       session,
		clock:         clock,
	}
}

func (fx prescriptionServiceFixtures) signIn(t *testing.T, subject, role string) {
	t.Helper()

	token := mintToken(t, subject, role, fx.clock.Now().Add(time.Hour))
	_, err := fx.session.Login(context.Background(), token, anaProfile)
	require.NoError(t, err)
}

func TestPrescriptionService_RequiresSession(t *testing.T) {
	fx := createTestPrescriptionService(t)
	ctx := context.Background()

	_, err := fx.service.ListPrescriptions(ctx, entity.PrescriptionFilter{})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.GetPrescription(ctx, "abc")
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.UploadPrescription(ctx, entity.PrescriptionUpload{Content: []byte("%PDF-1.7")})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.ValidatePrescription(ctx, "abc")
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestPrescriptionService_ListPrescriptions_CustomerSeesOwn(t *testing.T) {
	fx := createTestPrescriptionService(t)
	fx.signIn(t, "12345678", "CLIENTE")
	ctx := context.Background()

	fx.prescriptions.EXPECT().
		ListPrescriptions(ctx, entity.PrescriptionFilter{DNI: "12345678", Page: 1, PageSize: 200}).
		Return(&entity.PrescriptionPage{Items: []entity.Prescription{
			{ID: "a", PatientDNI: "12345678"},
			{ID: "b", PatientDNI: "87654321"},
		}}, nil)

	page, err := fx.service.ListPrescriptions(ctx, entity.PrescriptionFilter{DNI: "87654321", Page: 1, PageSize: 200})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestPrescriptionService_ListPrescriptions_AdminSeesAll(t *testing.T) {
	fx := createTestPrescriptionService(t)
	fx.signIn(t, "99999999", "ADMIN")
	ctx := context.Background()

	filter := entity.PrescriptionFilter{Status: entity.PrescriptionPending}
	fx.prescriptions.EXPECT().ListPrescriptions(ctx, filter).
		Return(&entity.PrescriptionPage{Items: []entity.Prescription{
			{ID: "a", PatientDNI: "12345678"},
			{ID: "b", PatientDNI: "87654321"},
		}}, nil)

	page, err := fx.service.ListPrescriptions(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestPrescriptionService_GetPrescription_OtherPatient(t *testing.T) {
	fx := createTestPrescriptionService(t)
	fx.signIn(t, "12345678", "CLIENTE")
	ctx := context.Background()

	fx.prescriptions.EXPECT().GetPrescription(ctx, "b").
		Return(&entity.Prescription{ID: "b", PatientDNI: "87654321"}, nil)

	_, err := fx.service.GetPrescription(ctx, "b")

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPrescriptionService_UploadPrescription(t *testing.T) {
	tests := []struct {
		name     string
		upload   entity.PrescriptionUpload
		wantName string
		wantErr  error
	}{
		{
			name:     "pdf",
			upload:   entity.PrescriptionUpload{FileName: "receta.pdf", Content: []byte("%PDF-1.4 body")},
			wantName: "receta.pdf",
		},
		{
			name:     "pdf without a name",
			upload:   entity.PrescriptionUpload{Content: []byte("%PDF-1.4 body")},
			wantName: "receta.pdf",
		},
		{
			name:    "not a pdf",
			upload:  entity.PrescriptionUpload{FileName: "foto.png", Content: []byte("\x89PNG")},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPrescriptionService(t)
			fx.signIn(t, "12345678", "CLIENTE")
			ctx := context.Background()

			if tt.wantErr == nil {
				fx.prescriptions.EXPECT().UploadPrescription(ctx, mock.AnythingOfType("entity.PrescriptionUpload")).
					Run(func(_ context.Context, upload entity.PrescriptionUpload) {
						assert.Equal(t, tt.wantName, upload.FileName)
					}).
					Return(&entity.Prescription{ID: "new", ValidationStatus: entity.PrescriptionPending}, nil)
			}

			prescription, err := fx.service.UploadPrescription(ctx, tt.upload)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new", prescription.ID)
		})
	}
}

func TestPrescriptionService_ValidateGoesThroughOrchestrator(t *testing.T) {
	fx := createTestPrescriptionService(t)
	fx.signIn(t, "12345678", "CLIENTE")
	ctx := context.Background()

	fx.orchestrator.EXPECT().ValidatePrescription(ctx, "a").
		Return(json.RawMessage(`{"estadoValidacion":"validada"}`), nil)

	result, err := fx.service.ValidatePrescription(ctx, "a")

	require.NoError(t, err)
	assert.JSONEq(t, `{"estadoValidacion":"validada"}`, string(result))
}

func TestPrescriptionService_DeletePrescription(t *testing.T) {
	fx := createTestPrescriptionService(t)
	fx.signIn(t, "12345678", "CLIENTE")
	ctx := context.Background()

	fx.prescriptions.EXPECT().GetPrescription(ctx, "a").
		Return(&entity.Prescription{ID: "a", PatientDNI: "12345678"}, nil)
	fx.prescriptions.EXPECT().DeletePrescription(ctx, "a").Return(nil)

	require.NoError(t, fx.service.DeletePrescription(ctx, "a"))
}

func TestPrescriptionService_ListDoctors(t *testing.T) {
	fx := createTestPrescriptionService(t)
	ctx := context.Background()

	valid := true
	filter := entity.DoctorFilter{Specialty: "Pediatría", ValidRegistration: &valid}
	fx.prescriptions.EXPECT().ListDoctors(ctx, filter).
		Return(&entity.DoctorPage{Items: []entity.Doctor{{CMP: "12345", ValidRegistration: true}}}, nil)

	page, err := fx.service.ListDoctors(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
