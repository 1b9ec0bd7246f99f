// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/folio-extract/pkg/types"
)

const sampleDocument = `{
  "DocumentMetadata": {"Pages": 1},
  "Blocks": [
    {"BlockType": "PAGE", "Id": "p1"},
    {"BlockType": "LINE", "Id": "l1", "Confidence": 99.1, "Text": "Nro Matrícula: 50C-123456"},
    {"BlockType": "LINE", "Id": "l2", "Text": "Impreso el 05 de marzo de 2021"},
    {"BlockType": "LINE", "Id": "l3", "Text": "CIRCULO REGISTRAL: 12 DEPTO: CUNDINAMARCA MUNICIPIO: BOGOTA VEREDA: CHIA"},
    {"BlockType": "LINE", "Id": "l4", "Text": "ESTADO DEL FOLIO:"},
    {"BlockType": "LINE", "Id": "l5", "Text": " ACTIVO "},
    {"BlockType": "WORD", "Id": "w1", "Text": "ACTIVO"}
  ]
}`

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument([]byte(sampleDocument))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 7)

	assert.Equal(t, types.BlockPage, doc.Blocks[0].BlockType)
	assert.Empty(t, doc.Blocks[0].Text)
	assert.Equal(t, "l1", doc.Blocks[1].ID)
	assert.InDelta(t, 99.1, doc.Blocks[1].Confidence, 0.001)

	got, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVO", got.FolioStatus)
	assert.Equal(t, 5, got.BlocksScanned)
}

func TestDecodeDocument_EmptyBlocks(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"Blocks": []}`))
	require.NoError(t, err)
	assert.NotNil(t, doc.Blocks)
	assert.Empty(t, doc.Blocks)
}

func TestDecodeDocument_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		reason string
	}{
		{name: "not JSON", data: `{"Blocks": [`, reason: "invalid JSON"},
		{name: "missing Blocks", data: `{"DocumentMetadata": {}}`, reason: "schema"},
		{name: "null Blocks", data: `{"Blocks": null}`, reason: "schema"},
		{name: "Blocks not an array", data: `{"Blocks": {"BlockType": "LINE"}}`, reason: "schema"},
		{name: "top level array", data: `[{"BlockType": "LINE"}]`, reason: "schema"},
		{name: "block without type", data: `{"Blocks": [{"Text": "x"}]}`, reason: "schema"},
		{name: "non string text", data: `{"Blocks": [{"BlockType": "LINE", "Text": 5}]}`, reason: "schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.data))
			var malformed *MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 7)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var malformed *MalformedInputError
	assert.NotErrorAs(t, err, &malformed)
}
