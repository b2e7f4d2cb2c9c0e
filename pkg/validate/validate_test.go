package validate_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-desk/pkg/validate"
)

func TestCustomValidator_Serial(t *testing.T) {
	type item struct {
		Serial string `validate:"required,serial"`
	}
	v := validate.NewCustomValidator()

	tests := []struct {
		serial  string
		wantErr bool
	}{
		{serial: "BK-01-2024"},
		{serial: "abc123"},
		{serial: "BK_01/2024", wantErr: true},
		{serial: "BK 01", wantErr: true},
		{serial: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.serial, func(t *testing.T) {
			err := v.Validate(item{Serial: tt.serial})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCustomValidator_JSONFieldNames(t *testing.T) {
	type req struct {
		ItemID int64 `json:"itemId" validate:"required"`
	}
	err := validate.NewCustomValidator().Validate(req{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "itemId", verrs[0].Field())
}
