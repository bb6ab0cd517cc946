package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func validPlayerForm() PlayerForm {
	return PlayerForm{
		FirstName:       "Juan",
		LastName:        "Pérez",
		Email:           "juan@test.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DocumentNumber:  "1234567",
		Phone:           "3001234567",
		BirthDate:       date(2001, time.May, 10),
		Gender:          GenderMale,
		Nickname:        "ElCrack",
		Position:        PositionForward,
		Height:          175,
		Weight:          70,
		Stats:           Stats{Pace: 40, Shooting: 35, Passing: 30, Dribbling: 45, Defense: 20, Physical: 50},
	}
}

func validHostForm() HostForm {
	return HostForm{
		BusinessName:         "Canchas El Golazo",
		NIT:                  "900123456-7",
		Address:              "Calle 45 #12-30, Bogotá",
		Latitude:             4.6097,
		Longitude:            -74.0817,
		AdminFirstName:       "María",
		AdminLastName:        "Gómez",
		AdminEmail:           "maria@test.com",
		AdminPassword:        "secret1",
		AdminConfirmPassword: "secret1",
		AdminDocumentNumber:  "52123456",
		AdminPhone:           "3109876543",
		AdminBirthDate:       date(1990, time.January, 15),
		AdminGender:          GenderFemale,
	}
}

func TestValidatePlayerFormValid(t *testing.T) {
	result := ValidatePlayerForm(validPlayerForm(), testNow)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidatePlayerFormIdempotent(t *testing.T) {
	form := validPlayerForm()
	form.FirstName = ""
	form.Email = "not-an-email"
	form.Phone = "123"

	first := ValidatePlayerForm(form, testNow)
	second := ValidatePlayerForm(form, testNow)
	assert.Equal(t, first, second)
}

func TestValidatePlayerFormCollectsAllMissingFields(t *testing.T) {
	form := validPlayerForm()
	form.FirstName = ""
	form.Email = ""

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "El nombre es requerido")
	assert.Contains(t, result.Errors, "El correo electrónico es requerido")
	// Missing email must not additionally fail the format check.
	assert.NotContains(t, result.Errors, "El correo electrónico no es válido")
}

func TestValidatePlayerFormErrorOrderIsStable(t *testing.T) {
	form := PlayerForm{}
	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	// Required-field messages appear in rule declaration order.
	assert.Equal(t, "El nombre es requerido", result.Errors[0])
	assert.Equal(t, "El apellido es requerido", result.Errors[1])
	assert.Equal(t, "El correo electrónico es requerido", result.Errors[2])
}

func TestValidatePlayerFormPasswordMismatchOnly(t *testing.T) {
	form := validPlayerForm()
	form.Password = "abcdef"
	form.ConfirmPassword = "abcdefg"

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"Las contraseñas no coinciden"}, result.Errors)
}

func TestValidatePlayerFormMalformedEmailOnlyFormatMessage(t *testing.T) {
	form := validPlayerForm()
	form.Email = "juan-at-test.com"

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"El correo electrónico no es válido"}, result.Errors)
}

func TestValidatePlayerFormAgeBoundary(t *testing.T) {
	form := validPlayerForm()

	// Exactly 13 years old today: valid.
	form.BirthDate = date(2013, time.August, 30)
	assert.True(t, ValidatePlayerForm(form, testNow).Valid)

	// One day short of 13: invalid.
	form.BirthDate = date(2013, time.August, 31)
	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"Debe ser mayor de 13 años"}, result.Errors)
}

func TestValidatePlayerFormMaxAge(t *testing.T) {
	form := validPlayerForm()
	form.BirthDate = date(1920, time.January, 1)

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "La edad no puede superar los 100 años")
}

func TestValidatePlayerFormPhonePattern(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"3001234567", true},
		{"3999999999", true},
		{"2001234567", false},
		{"300123456", false},
		{"30012345678", false},
		{"300123456a", false},
	}

	for _, tt := range tests {
		form := validPlayerForm()
		form.Phone = tt.phone
		assert.Equal(t, tt.valid, ValidatePlayerForm(form, testNow).Valid, "phone %q", tt.phone)
	}
}

func TestValidatePlayerFormDocumentLength(t *testing.T) {
	form := validPlayerForm()

	form.DocumentNumber = "123456"
	assert.False(t, ValidatePlayerForm(form, testNow).Valid)

	form.DocumentNumber = "123456789012"
	assert.False(t, ValidatePlayerForm(form, testNow).Valid)

	form.DocumentNumber = "12345678901"
	assert.True(t, ValidatePlayerForm(form, testNow).Valid)
}

func TestValidatePlayerFormUnknownPosition(t *testing.T) {
	form := validPlayerForm()
	form.Position = "libero"

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"La posición no es válida"}, result.Errors)
}

func TestValidatePlayerFormUnknownGender(t *testing.T) {
	form := validPlayerForm()
	form.Gender = "unknown"

	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"El género no es válido"}, result.Errors)
}

func TestValidatePlayerFormMeasuresOnlyCheckedWhenPresent(t *testing.T) {
	form := validPlayerForm()
	form.Height = 0
	form.Weight = 0
	assert.True(t, ValidatePlayerForm(form, testNow).Valid)

	form.Height = 90
	result := ValidatePlayerForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"La estatura debe estar entre 100 y 250 cm"}, result.Errors)
}

func TestValidateHostFormValid(t *testing.T) {
	result := ValidateHostForm(validHostForm(), testNow)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateHostFormAdminMustBeAdult(t *testing.T) {
	form := validHostForm()
	form.AdminBirthDate = date(2010, time.January, 1)

	result := ValidateHostForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"El administrador debe ser mayor de 18 años"}, result.Errors)
}

func TestValidateHostFormMissingCoordinates(t *testing.T) {
	form := validHostForm()
	form.Latitude = 0
	form.Longitude = 0

	result := ValidateHostForm(form, testNow)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "La ubicación del establecimiento es requerida")
}

func TestValidateHostFormBadNIT(t *testing.T) {
	form := validHostForm()
	form.NIT = "abc"

	result := ValidateHostForm(form, testNow)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"El NIT no es válido"}, result.Errors)
}
