package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"dentallab/internal/pkg/errs"
)

const (
	invoicePrefix     = "E"
	invoiceClinicStep = 10000
)

var invoicePattern = regexp.MustCompile(`^E\d{5,}$`)

// InvoiceID is the human-readable order identifier
// "E" + zero-padded(5, dentalClinicID*10000 + orderID).
type InvoiceID string

// NewInvoiceID derives the invoice identifier of an order. The derivation is
// pure: the same clinic and order always give the same id.
//
// Example:
//
//	id, _ := kernel.NewInvoiceID(1, 7) // "E10007"
func NewInvoiceID(dentalClinicID, orderID int64) (InvoiceID, error) {
	if err := ValidateID("dental clinic id", dentalClinicID); err != nil {
		return "", err
	}
	if err := ValidateID("order id", orderID); err != nil {
		return "", err
	}

	return InvoiceID(fmt.Sprintf("%s%05d", invoicePrefix, dentalClinicID*invoiceClinicStep+orderID)), nil
}

// ParseInvoiceID checks the textual format and returns the encoded number.
func ParseInvoiceID(s string) (InvoiceID, int64, error) {
	if !invoicePattern.MatchString(s) {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("invoice id", fmt.Errorf("%q is not E followed by digits", s))
	}

	n, err := strconv.ParseInt(s[len(invoicePrefix):], 10, 64)
	if err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("invoice id", err)
	}

	return InvoiceID(s), n, nil
}

func (i InvoiceID) String() string {
	return string(i)
}

func (i InvoiceID) IsZero() bool {
	return i == ""
}
