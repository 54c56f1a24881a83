package backend

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// uploadField is the multipart field the prescriptions service reads the PDF from.
const uploadField = "archivoPDF"

type prescriptionService struct {
	*client
}

func (s *prescriptionService) Echo(ctx context.Context) error {
	return s.echo(ctx, "/echo")
}

func (s *prescriptionService) ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) (*entity.PrescriptionPage, error) {
	query := url.Values{}
	setIfNotEmpty(query, "dni", filter.DNI)
	setIfNotEmpty(query, "cmp", filter.CMP)
	setIfNotEmpty(query, "estado", filter.Status)
	setIfPositive(query, "page", filter.Page)
	setIfPositive(query, "pagesize", filter.PageSize)

	var page entity.PrescriptionPage
	if err := s.getJSON(ctx, "/api/recetas/filter", query, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (s *prescriptionService) GetPrescription(ctx context.Context, id string) (*entity.Prescription, error) {
	var prescription entity.Prescription
	if err := s.getJSON(ctx, "/api/recetas/"+url.PathEscape(id), nil, &prescription); err != nil {
		return nil, err
	}

	return &prescription, nil
}

func (s *prescriptionService) UploadPrescription(ctx context.Context, upload entity.PrescriptionUpload) (*entity.Prescription, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range upload.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, errors.Wrap(err, "write multipart field")
		}
	}

	part, err := writer.CreateFormFile(uploadField, upload.FileName)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart file")
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, errors.Wrap(err, "write multipart file")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart writer")
	}

	var prescription entity.Prescription
	if err := s.do(ctx, http.MethodPost, "/api/recetas/upload", nil, &buf, writer.FormDataContentType(), &prescription); err != nil {
		return nil, err
	}

	return &prescription, nil
}

func (s *prescriptionService) ValidatePrescription(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodPut, "/api/recetas/"+url.PathEscape(id)+"/validar", nil, nil, nil)
}

// DeletePrescription removes the prescription document by its _id.
func (s *prescriptionService) DeletePrescription(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/api/recetas/archivo/"+url.PathEscape(id), nil, nil, nil)
}

func (s *prescriptionService) ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*entity.DoctorPage, error) {
	query := url.Values{}
	setIfNotEmpty(query, "nombre", filter.Name)
	setIfNotEmpty(query, "especialidad", filter.Specialty)
	if filter.ValidRegistration != nil {
		query.Set("colegiaturaValida", strconv.FormatBool(*filter.ValidRegistration))
	}
	setIfPositive(query, "page", filter.Page)
	setIfPositive(query, "limit", filter.Limit)

	var page entity.DoctorPage
	if err := s.getJSON(ctx, "/api/medicos/filter", query, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func setIfPositive(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}
