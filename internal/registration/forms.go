package registration

import "time"

// Gender is the vocabulary the form layer uses. The backend speaks a
// different vocabulary; see mapping.go.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Position is the player field position as selected in the form.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// Self-assessed skill values are bounded to this range.
const (
	StatMin = 0
	StatMax = 60
)

// Stats holds the six self-assessment sliders. Goalkeeper forms reuse the
// same six slots under different backend names (diving, handling, reflexes,
// speed, kicking, positioning); the split happens during mapping.
type Stats struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defense   int `json:"defense"`
	Physical  int `json:"physical"`
}

// Clamped returns a copy with every value forced into [StatMin, StatMax].
func (s Stats) Clamped() Stats {
	return Stats{
		Pace:      clampStat(s.Pace),
		Shooting:  clampStat(s.Shooting),
		Passing:   clampStat(s.Passing),
		Dribbling: clampStat(s.Dribbling),
		Defense:   clampStat(s.Defense),
		Physical:  clampStat(s.Physical),
	}
}

func clampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// PlayerForm carries the raw state of the player registration wizard. Fields
// may be empty or zero; the validator reports what is missing.
type PlayerForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	DocumentNumber  string
	Phone           string
	BirthDate       time.Time
	Gender          Gender
	Nickname        string
	Position        Position
	Height          float64 // cm
	Weight          float64 // kg
	Stats           Stats

	// Local path of the profile picture to upload, if any.
	ProfileImagePath string
}

// HostForm carries the raw state of the field-host registration wizard. The
// Admin* fields describe the person managing the business account.
type HostForm struct {
	BusinessName string
	NIT          string
	Address      string
	Latitude     float64
	Longitude    float64

	AdminFirstName       string
	AdminLastName        string
	AdminEmail           string
	AdminPassword        string
	AdminConfirmPassword string
	AdminDocumentNumber  string
	AdminPhone           string
	AdminBirthDate       time.Time
	AdminGender          Gender

	// Local paths of documents to upload. All optional; a failed upload
	// simply leaves the corresponding backend field absent.
	ProfileImagePath        string
	RUTPath                 string
	ChamberCertPath         string
	BankCertPath            string
	LegalIDPath             string
	EstablishmentPhotoPaths []string
}
