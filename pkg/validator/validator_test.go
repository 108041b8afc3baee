package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerForm struct {
	Name    string `validate:"notblank"`
	Phone   string `validate:"notblank,inmobile"`
	Address string `validate:"notblank"`
}

func TestValidate_AllFieldsValid(t *testing.T) {
	err := Validate(customerForm{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Main St",
	})
	assert.NoError(t, err)
}

func TestValidate_BlankFields(t *testing.T) {
	err := Validate(customerForm{
		Name:    "   ",
		Phone:   "9876543210",
		Address: "",
	})

	require.Error(t, err)
	valErr, ok := err.(*ValidationError)
	require.True(t, ok)

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "is required", fields["Address"])
	assert.NotContains(t, fields, "Phone")
}

func TestValidate_MobileShape(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid starting with 9", "9876543210", true},
		{"valid starting with 6", "6123456789", true},
		{"too short", "12345", false},
		{"too long", "98765432101", false},
		{"first digit below 6", "5876543210", false},
		{"letters", "98765abcde", false},
		{"surrounding whitespace accepted", " 9876543210 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(customerForm{Name: "A", Phone: tt.phone, Address: "B"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				valErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Equal(t, "must be a valid 10-digit mobile number", valErr.Fields()["Phone"])
			}
		})
	}
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	type form struct {
		FullName string `json:"full_name" validate:"notblank"`
	}

	err := Validate(form{})

	require.Error(t, err)
	valErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, valErr.Fields(), "full_name")
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(customerForm{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Name' is required")
}
