package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadField is the multipart field carrying the prescription PDF.
const uploadField = "archivoPDF"

// PrescriptionHandlerParams holds dependencies for PrescriptionHandler, injected by Fx.
type PrescriptionHandlerParams struct {
	fx.In

	Prescriptions usecase.PrescriptionUsecase
}

// PrescriptionHandler serves prescriptions and the doctor registry.
type PrescriptionHandler struct {
	prescriptions usecase.PrescriptionUsecase
}

// NewPrescriptionHandler is the constructor for PrescriptionHandler.
func NewPrescriptionHandler(params PrescriptionHandlerParams) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptions: params.Prescriptions}
}

func invalidQuery(err error) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
		"query": err.Error(),
	}))
}

// ListPrescriptions handles GET /prescriptions.
func (h *PrescriptionHandler) ListPrescriptions(c echo.Context) error {
	var filter entity.PrescriptionFilter
	err := echo.QueryParamsBinder(c).
		String("dni", &filter.DNI).
		String("cmp", &filter.CMP).
		String("estado", &filter.Status).
		Int("page", &filter.Page).
		Int("pagesize", &filter.PageSize).
		BindError()
	if err != nil {
		return invalidQuery(err)
	}

	page, err := h.prescriptions.ListPrescriptions(requestContext(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetPrescription handles GET /prescriptions/:id.
func (h *PrescriptionHandler) GetPrescription(c echo.Context) error {
	id, err := stringParam(c, "id")
	if err != nil {
		return err
	}

	prescription, err := h.prescriptions.GetPrescription(requestContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription)
}

// UploadPrescription handles the multipart POST /prescriptions.
func (h *PrescriptionHandler) UploadPrescription(c echo.Context) error {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			uploadField: "es obligatorio",
		}))
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	upload := entity.PrescriptionUpload{
		FileName: header.Filename,
		Content:  content,
	}

	if form, err := c.MultipartForm(); err == nil {
		for name, values := range form.Value {
			if len(values) == 0 {
				continue
			}
			if upload.Fields == nil {
				upload.Fields = make(map[string]string, len(form.Value))
			}
			upload.Fields[name] = values[0]
		}
	}

	prescription, err := h.prescriptions.UploadPrescription(requestContext(c), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription)
}

// ValidatePrescription handles PUT /prescriptions/:id/validate.
func (h *PrescriptionHandler) ValidatePrescription(c echo.Context) error {
	id, err := stringParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.prescriptions.ValidatePrescription(requestContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeletePrescription handles DELETE /prescriptions/:id.
func (h *PrescriptionHandler) DeletePrescription(c echo.Context) error {
	id, err := stringParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.prescriptions.DeletePrescription(requestContext(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListDoctors handles GET /doctors.
func (h *PrescriptionHandler) ListDoctors(c echo.Context) error {
	var (
		filter entity.DoctorFilter
		valid  bool
	)
	err := echo.QueryParamsBinder(c).
		String("nombre", &filter.Name).
		String("especialidad", &filter.Specialty).
		Bool("colegiaturaValida", &valid).
		Int("page", &filter.Page).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return invalidQuery(err)
	}
	if c.QueryParam("colegiaturaValida") != "" {
		filter.ValidRegistration = &valid
	}

	page, err := h.prescriptions.ListDoctors(requestContext(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}
