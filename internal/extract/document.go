// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdiddy/folio-extract/pkg/types"
)

// documentSchema describes the part of the recognizer output the extractor
// relies on. Unknown keys are allowed; recognizers emit many.
const documentSchema = `{
  "type": "object",
  "required": ["Blocks"],
  "properties": {
    "Blocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["BlockType"],
        "properties": {
          "BlockType": {"type": "string"},
          "Text": {"type": "string"},
          "Id": {"type": "string"},
          "Confidence": {"type": "number"}
        }
      }
    }
  }
}`

const documentSchemaURL = "document.schema.json"

var compiledDocumentSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(documentSchemaURL, strings.NewReader(documentSchema)); err != nil {
		panic(fmt.Sprintf("adding document schema: %v", err))
	}
	return compiler.MustCompile(documentSchemaURL)
}

// LoadDocument reads and decodes a recognizer output file.
func LoadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return DecodeDocument(data)
}

// DecodeDocument validates data against the document schema and decodes
// it. Invalid JSON and schema violations are *MalformedInputError.
func DecodeDocument(data []byte) (*types.Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedInputError{Reason: "invalid JSON", Err: err}
	}
	if err := compiledDocumentSchema.Validate(raw); err != nil {
		return nil, &MalformedInputError{Reason: "document does not match schema", Err: err}
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Reason: "decoding blocks", Err: err}
	}
	return &doc, nil
}
