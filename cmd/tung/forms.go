package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tungdeportes/tung-go/internal/registration"
)

// The JSON form files use a calendar date for birthDate, matching what the
// backend itself speaks, so they can be written by hand.
const birthDateLayout = "2006-01-02"

type playerFormInput struct {
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	Password        string             `json:"password"`
	ConfirmPassword string             `json:"confirmPassword"`
	DocumentNumber  string             `json:"documentNumber"`
	Phone           string             `json:"phone"`
	BirthDate       string             `json:"birthDate"`
	Gender          string             `json:"gender"`
	Nickname        string             `json:"nickname"`
	Position        string             `json:"position"`
	Height          float64            `json:"height"`
	Weight          float64            `json:"weight"`
	Stats           registration.Stats `json:"stats"`
	ProfileImage    string             `json:"profileImage"`
}

type hostFormInput struct {
	BusinessName string  `json:"businessName"`
	NIT          string  `json:"nit"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	AdminFirstName       string `json:"adminFirstName"`
	AdminLastName        string `json:"adminLastName"`
	AdminEmail           string `json:"adminEmail"`
	AdminPassword        string `json:"adminPassword"`
	AdminConfirmPassword string `json:"adminConfirmPassword"`
	AdminDocumentNumber  string `json:"adminDocumentNumber"`
	AdminPhone           string `json:"adminPhone"`
	AdminBirthDate       string `json:"adminBirthDate"`
	AdminGender          string `json:"adminGender"`

	ProfileImage        string   `json:"profileImage"`
	RUT                 string   `json:"rut"`
	ChamberCert         string   `json:"chamberCert"`
	BankCert            string   `json:"bankCert"`
	LegalID             string   `json:"legalId"`
	EstablishmentPhotos []string `json:"establishmentPhotos"`
}

func readFormFile[T any](path string) (T, error) {
	var input T
	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("read form file: %w", err)
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("parse form file: %w", err)
	}
	return input, nil
}

func parseBirthDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(birthDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

func (in playerFormInput) toForm() (registration.PlayerForm, error) {
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return registration.PlayerForm{}, err
	}
	return registration.PlayerForm{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Password:         in.Password,
		ConfirmPassword:  in.ConfirmPassword,
		DocumentNumber:   in.DocumentNumber,
		Phone:            in.Phone,
		BirthDate:        birth,
		Gender:           registration.Gender(in.Gender),
		Nickname:         in.Nickname,
		Position:         registration.Position(in.Position),
		Height:           in.Height,
		Weight:           in.Weight,
		Stats:            in.Stats,
		ProfileImagePath: in.ProfileImage,
	}, nil
}

func (in hostFormInput) toForm() (registration.HostForm, error) {
	birth, err := parseBirthDate(in.AdminBirthDate)
	if err != nil {
		return registration.HostForm{}, err
	}
	return registration.HostForm{
		BusinessName:            in.BusinessName,
		NIT:                     in.NIT,
		Address:                 in.Address,
		Latitude:                in.Latitude,
		Longitude:               in.Longitude,
		AdminFirstName:          in.AdminFirstName,
		AdminLastName:           in.AdminLastName,
		AdminEmail:              in.AdminEmail,
		AdminPassword:           in.AdminPassword,
		AdminConfirmPassword:    in.AdminConfirmPassword,
		AdminDocumentNumber:     in.AdminDocumentNumber,
		AdminPhone:              in.AdminPhone,
		AdminBirthDate:          birth,
		AdminGender:             registration.Gender(in.AdminGender),
		ProfileImagePath:        in.ProfileImage,
		RUTPath:                 in.RUT,
		ChamberCertPath:         in.ChamberCert,
		BankCertPath:            in.BankCert,
		LegalIDPath:             in.LegalID,
		EstablishmentPhotoPaths: in.EstablishmentPhotos,
	}, nil
}
