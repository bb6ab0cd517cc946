package registration

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// ValidationResult collects every failed check for a form. The error list is
// ordered by the declaration order of the rules, so identical inputs always
// produce identical results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Age bounds enforced during registration.
const (
	PlayerMinAge = 13
	HostMinAge   = 18
	MaxAge       = 100
)

// Physical-attribute bounds. The form treats a zero value as "not provided".
const (
	minHeightCm = 100
	maxHeightCm = 250
	minWeightKg = 30
	maxWeightKg = 200
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Colombian mobile numbers: 3 followed by nine digits.
	phonePattern = regexp.MustCompile(`^3\d{9}$`)
	nitPattern   = regexp.MustCompile(`^\d{9}(-\d)?$`)
)

// collector accumulates error messages without short-circuiting.
type collector struct {
	errs []string
}

func (c *collector) add(msg string) {
	c.errs = append(c.errs, msg)
}

// required appends msg when the value is empty after trimming and reports
// whether the value was present. Format checks only run on present values so
// a missing field never produces two messages.
func (c *collector) required(value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		c.add(msg)
		return false
	}
	return true
}

func (c *collector) result() ValidationResult {
	return ValidationResult{Valid: len(c.errs) == 0, Errors: c.errs}
}

// ValidatePlayerForm runs every player registration rule and returns the
// full list of failures. It never mutates the form and never returns early.
func ValidatePlayerForm(f PlayerForm, now time.Time) ValidationResult {
	var c collector

	c.required(f.FirstName, "El nombre es requerido")
	c.required(f.LastName, "El apellido es requerido")
	if c.required(f.Email, "El correo electrónico es requerido") && !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		c.add("El correo electrónico no es válido")
	}
	if c.required(f.Password, "La contraseña es requerida") && len(f.Password) < 6 {
		c.add("La contraseña debe tener al menos 6 caracteres")
	}
	c.required(f.ConfirmPassword, "La confirmación de contraseña es requerida")
	if f.Password != f.ConfirmPassword {
		c.add("Las contraseñas no coinciden")
	}
	c.checkDocument(f.DocumentNumber)
	c.checkPhone(f.Phone)
	c.checkBirthDate(f.BirthDate, now, PlayerMinAge, "Debe ser mayor de 13 años")
	c.checkGender(f.Gender)
	c.required(f.Nickname, "El apodo es requerido")
	if c.required(string(f.Position), "La posición es requerida") {
		if _, ok := positionToBackend[f.Position]; !ok {
			c.add("La posición no es válida")
		}
	}
	c.checkMeasure(f.Height, minHeightCm, maxHeightCm, "La estatura debe estar entre 100 y 250 cm")
	c.checkMeasure(f.Weight, minWeightKg, maxWeightKg, "El peso debe estar entre 30 y 200 kg")

	return c.result()
}

// ValidateHostForm runs every field-host registration rule, covering both
// the business fields and the admin contact.
func ValidateHostForm(f HostForm, now time.Time) ValidationResult {
	var c collector

	c.required(f.BusinessName, "El nombre del negocio es requerido")
	if c.required(f.NIT, "El NIT es requerido") && !nitPattern.MatchString(strings.TrimSpace(f.NIT)) {
		c.add("El NIT no es válido")
	}
	c.required(f.Address, "La dirección es requerida")
	if f.Latitude == 0 && f.Longitude == 0 {
		c.add("La ubicación del establecimiento es requerida")
	} else if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
		c.add("Las coordenadas no son válidas")
	}

	c.required(f.AdminFirstName, "El nombre del administrador es requerido")
	c.required(f.AdminLastName, "El apellido del administrador es requerido")
	if c.required(f.AdminEmail, "El correo electrónico es requerido") && !emailPattern.MatchString(strings.TrimSpace(f.AdminEmail)) {
		c.add("El correo electrónico no es válido")
	}
	if c.required(f.AdminPassword, "La contraseña es requerida") && len(f.AdminPassword) < 6 {
		c.add("La contraseña debe tener al menos 6 caracteres")
	}
	c.required(f.AdminConfirmPassword, "La confirmación de contraseña es requerida")
	if f.AdminPassword != f.AdminConfirmPassword {
		c.add("Las contraseñas no coinciden")
	}
	c.checkDocument(f.AdminDocumentNumber)
	c.checkPhone(f.AdminPhone)
	c.checkBirthDate(f.AdminBirthDate, now, HostMinAge, "El administrador debe ser mayor de 18 años")
	c.checkGender(f.AdminGender)

	return c.result()
}

func (c *collector) checkDocument(doc string) {
	if !c.required(doc, "El número de documento es requerido") {
		return
	}
	if n := len(strings.TrimSpace(doc)); n < 7 || n > 11 {
		c.add("El número de documento debe tener entre 7 y 11 dígitos")
	}
}

func (c *collector) checkPhone(phone string) {
	if !c.required(phone, "El teléfono es requerido") {
		return
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		c.add("El teléfono debe iniciar en 3 y tener 10 dígitos")
	}
}

func (c *collector) checkBirthDate(birth, now time.Time, minAge int, minAgeMsg string) {
	if birth.IsZero() {
		c.add("La fecha de nacimiento es requerida")
		return
	}
	age := Age(birth, now)
	if age < minAge {
		c.add(minAgeMsg)
	} else if age > MaxAge {
		c.add("La edad no puede superar los 100 años")
	}
}

func (c *collector) checkGender(g Gender) {
	if !c.required(string(g), "El género es requerido") {
		return
	}
	if _, ok := genderToBackend[g]; !ok {
		c.add("El género no es válido")
	}
}

func (c *collector) checkMeasure(v, min, max float64, msg string) {
	if v == 0 || math.IsNaN(v) {
		return
	}
	if v < min || v > max {
		c.add(msg)
	}
}
