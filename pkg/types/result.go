// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// CalendarDate is a date without a time component.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateLayout is the rendering used for print dates (YYYY/MM/DD).
const DateLayout = "2006/01/02"

// IsZero reports whether the date was never set.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String renders the date as YYYY/MM/DD with zero-padded month and day.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML output
// carry the YYYY/MM/DD form.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the YYYY/MM/DD form.
func (d *CalendarDate) UnmarshalText(b []byte) error {
	t, err := time.Parse(DateLayout, string(b))
	if err != nil {
		return fmt.Errorf("parsing calendar date %q: %w", string(b), err)
	}
	d.Year, d.Month, d.Day = t.Date()
	return nil
}

// Location identifies where the registered property lies.
type Location struct {
	Department   string `json:"department" yaml:"department"`
	Municipality string `json:"municipality" yaml:"municipality"`

	// Locality is the vereda, a rural subdivision of the municipality.
	Locality string `json:"locality" yaml:"locality"`
}

// ExtractionResult is the normalized record produced from one document.
type ExtractionResult struct {
	// RegistrationNumber is the folio's registration (matrícula) number.
	RegistrationNumber string `json:"registration_number" yaml:"registration_number"`

	// PrintDate is the date the certificate was printed.
	PrintDate CalendarDate `json:"print_date" yaml:"print_date"`

	Location Location `json:"location" yaml:"location"`

	// FolioStatus is free text such as "ACTIVO" or "CERRADO".
	FolioStatus string `json:"folio_status" yaml:"folio_status"`

	// BlocksScanned is the number of blocks examined before the scan
	// stopped, counting skipped non-LINE blocks.
	BlocksScanned int `json:"-" yaml:"-"`
}
