package order

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Mode tells why the lab is producing the order.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeNew
	ModeRepair
	ModeWarranty
)

var modeStrings = map[Mode]string{
	ModeNew:      "New",
	ModeRepair:   "Repair",
	ModeWarranty: "Warranty",
}

var modesByString = map[string]Mode{
	"New":      ModeNew,
	"Repair":   ModeRepair,
	"Warranty": ModeWarranty,
}

func ParseMode(s string) (Mode, error) {
	if m, ok := modesByString[s]; ok {
		return m, nil
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%q is not an order mode", s))
}

func (m Mode) Validate() error {
	if _, ok := modeStrings[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

func (m Mode) String() string {
	if s, ok := modeStrings[m]; ok {
		return s
	}
	return "Unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Gender of the patient the restoration is made for.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

var genderStrings = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
}

var gendersByString = map[string]Gender{
	"Male":   GenderMale,
	"Female": GenderFemale,
}

func ParseGender(s string) (Gender, error) {
	if g, ok := gendersByString[s]; ok {
		return g, nil
	}
	return GenderUnknown, errs.NewValueIsInvalidErrorWithCause("patient gender is invalid", fmt.Errorf("%q is not a gender", s))
}

func (g Gender) Validate() error {
	if _, ok := genderStrings[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("patient gender is invalid", fmt.Errorf("%d is not a valid gender", g))
	}
	return nil
}

func (g Gender) String() string {
	if s, ok := genderStrings[g]; ok {
		return s
	}
	return "Unknown"
}

func (g Gender) MarshalText() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
