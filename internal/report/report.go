// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an extraction result for the terminal or for
// other tools to consume.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/folio-extract/pkg/types"
)

// Write renders res to w in the given format. The text format prints one
// labeled line per field.
func Write(w io.Writer, res *types.ExtractionResult, format types.OutputFormat) error {
	if res == nil {
		return fmt.Errorf("no result to write")
	}

	switch format {
	case types.OutputText, "":
		return writeText(w, res)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

func writeText(w io.Writer, res *types.ExtractionResult) error {
	lines := []struct {
		label string
		value string
	}{
		{"Número de Matrícula", res.RegistrationNumber},
		{"Fecha de Impresión", res.PrintDate.String()},
		{"Departamento", res.Location.Department},
		{"Municipio", res.Location.Municipality},
		{"Vereda", res.Location.Locality},
		{"Estado del Folio", res.FolioStatus},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.OutputText, types.OutputJSON, types.OutputYAML:
		return f, nil
	case "":
		return types.OutputText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
	}
}
