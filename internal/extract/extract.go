// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the registration number, print date, location and
// folio status out of a recognized registry certificate.
//
// The scan is a single forward pass over LINE blocks that stops as soon as
// every field has a value. Registration number and print date keep their
// first match; the location keeps its last match; the folio status is the
// text of the block that follows the first "ESTADO DEL FOLIO:" marker.
package extract

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/pdiddy/folio-extract/pkg/types"
)

var (
	// registrationRe runs against folded text, so the accent on
	// "Matrícula" is already gone.
	registrationRe = regexp.MustCompile(`Nro Matricula: (\S+)`)

	printDateRe = regexp.MustCompile(`Impreso el (.+)`)

	locationRe = regexp.MustCompile(`CIRCULO REGISTRAL: \d+.*?DEPTO: (.*?)\s*MUNICIPIO: (.*?)\s*VEREDA: (.+)`)

	statusMarkerRe = regexp.MustCompile(`ESTADO DEL FOLIO:`)
)

// scanState accumulates raw captures during the scan. The json names are
// the ones reported by IncompleteExtractionError.
type scanState struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	RawPrintDate       string `json:"print_date" validate:"required"`
	Department         string `json:"department" validate:"required"`
	Municipality       string `json:"municipality" validate:"required"`
	Locality           string `json:"locality" validate:"required"`
	FolioStatus        string `json:"folio_status" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// missing returns the names of unresolved fields in declaration order, or
// nil when every field has a value.
func (s *scanState) missing() []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return names
}

// normalizeSpaces turns non-ASCII whitespace such as U+00A0 into plain
// spaces. RE2's \s and \S only know ASCII whitespace.
func normalizeSpaces(s string) string {
	if !strings.ContainsFunc(s, isWideSpace) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isWideSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func isWideSpace(r rune) bool {
	return r > unicode.MaxASCII && unicode.IsSpace(r)
}

// Extractor scans recognized documents. The zero value is ready to use and
// discards its logs.
type Extractor struct {
	Log zerolog.Logger
}

// New returns an Extractor that logs scan decisions to log at debug level.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{Log: log}
}

// Extract scans doc with a non-logging Extractor.
func Extract(doc *types.Document) (*types.ExtractionResult, error) {
	return New(zerolog.Nop()).Extract(doc)
}

// Extract scans the LINE blocks of doc and returns the normalized record.
//
// It returns *MalformedInputError when doc has no block list or the status
// marker sits on the last block, *IncompleteExtractionError when a field
// never matched, and *DateParseError when the print date text is unusable.
func (e *Extractor) Extract(doc *types.Document) (*types.ExtractionResult, error) {
	if doc == nil || doc.Blocks == nil {
		return nil, &MalformedInputError{Reason: "document has no Blocks list"}
	}

	var (
		st         scanState
		markerSeen bool
		scanned    int
	)

	blocks := doc.Blocks
	for i := 0; i < len(blocks); i++ {
		scanned = i + 1
		if blocks[i].BlockType != types.BlockLine {
			continue
		}
		text := normalizeSpaces(strings.TrimSpace(blocks[i].Text))

		if st.RegistrationNumber == "" {
			if m := registrationRe.FindStringSubmatch(Fold(text)); m != nil {
				st.RegistrationNumber = m[1]
				e.Log.Debug().Int("block", i).Str("value", m[1]).Msg("registration number")
			}
		}

		if st.RawPrintDate == "" {
			if m := printDateRe.FindStringSubmatch(text); m != nil {
				st.RawPrintDate = m[1]
				e.Log.Debug().Int("block", i).Str("value", m[1]).Msg("print date")
			}
		}

		if m := locationRe.FindStringSubmatch(text); m != nil {
			if st.Department != "" {
				e.Log.Debug().Int("block", i).Msg("location seen again, replacing")
			}
			st.Department, st.Municipality, st.Locality = m[1], m[2], m[3]
			e.Log.Debug().Int("block", i).
				Str("department", m[1]).Str("municipality", m[2]).Str("locality", m[3]).
				Msg("location")
		}

		if !markerSeen && statusMarkerRe.MatchString(text) {
			markerSeen = true
			if i+1 >= len(blocks) {
				return nil, &MalformedInputError{Reason: "folio status marker on last block has no following block"}
			}
			st.FolioStatus = strings.TrimSpace(blocks[i+1].Text)
			e.Log.Debug().Int("block", i).Str("value", st.FolioStatus).Msg("folio status")
		}

		if st.missing() == nil {
			break
		}
	}

	e.Log.Debug().Int("scanned", scanned).Int("total", len(blocks)).Msg("scan finished")

	if missing := st.missing(); missing != nil {
		return nil, &IncompleteExtractionError{Missing: missing}
	}

	date, err := ParseDate(st.RawPrintDate)
	if err != nil {
		return nil, err
	}

	return &types.ExtractionResult{
		RegistrationNumber: st.RegistrationNumber,
		PrintDate:          date,
		Location: types.Location{
			Department:   st.Department,
			Municipality: st.Municipality,
			Locality:     st.Locality,
		},
		FolioStatus:   st.FolioStatus,
		BlocksScanned: scanned,
	}, nil
}
