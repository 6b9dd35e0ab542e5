// Package directory holds the reference data the lab works against: dental
// clinics, staff accounts, products and tooth positions. This service only
// reads them.
package directory

import (
	"fmt"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

type DentalClinic struct {
	ID      int64
	Name    string
	Address string
}

type Account struct {
	ID       int64
	FullName string
	Role     string
}

type Product struct {
	ID          int64
	Name        string
	Description string
	CostPrice   kernel.Money
	CategoryID  int64
}

// TeethPosition identifies a tooth by arch quadrant (1..4) and position name.
type TeethPosition struct {
	ID           int64
	ToothArch    int
	PositionName string
	Description  string
}

func (p TeethPosition) Validate() error {
	if p.ToothArch < 1 || p.ToothArch > 4 {
		return errs.NewValueIsOutOfRangeErrorWithCause("tooth arch", p.ToothArch, 1, 4,
			fmt.Errorf("teeth position %d", p.ID))
	}
	return nil
}
