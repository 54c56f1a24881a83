package validator

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_LoginRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        service.LoginRequest
		wantFields []string
	}{
		{name: "email", req: service.LoginRequest{Email: "ana@pv.pe", Password: "x"}},
		{name: "dni", req: service.LoginRequest{DNI: "12345678", Password: "x"}},
		{name: "neither", req: service.LoginRequest{Password: "x"}, wantFields: []string{"email", "dni"}},
		{name: "short dni", req: service.LoginRequest{DNI: "123", Password: "x"}, wantFields: []string{"dni"}},
		{name: "no password", req: service.LoginRequest{Email: "ana@pv.pe"}, wantFields: []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			details, ok := appErr.Details().(map[string]string)
			require.True(t, ok)
			for _, field := range tt.wantFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestValidator_ProductType(t *testing.T) {
	v := New()

	valid := entity.ProductInput{Name: "Ibuprofeno", Type: "Analgesico", Price: 2}
	require.NoError(t, v.Validate(valid))

	invalid := valid
	invalid.Type = "Golosinas"
	err := v.Validate(invalid)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]string{"tipo": "tipo de producto desconocido"}, appErr.Details())
}
