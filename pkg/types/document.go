// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockType tags a recognized unit of text. Only BlockLine is read by the
// extractor; the other values appear in recognition output and are skipped.
type BlockType string

const (
	BlockPage BlockType = "PAGE"
	BlockLine BlockType = "LINE"
	BlockWord BlockType = "WORD"
)

// Block is one unit of recognized text as emitted by the document
// recognition service.
type Block struct {
	// ID is the recognition service's identifier for the block. Optional.
	ID string `json:"Id,omitempty" yaml:"id,omitempty"`

	// BlockType is the block tag (PAGE, LINE, WORD, ...).
	BlockType BlockType `json:"BlockType" yaml:"block_type"`

	// Text is the recognized text. Absent for some block types.
	Text string `json:"Text,omitempty" yaml:"text,omitempty"`

	// Confidence is carried through from the recognizer and never checked.
	Confidence float64 `json:"Confidence,omitempty" yaml:"confidence,omitempty"`
}

// Document is the recognizer's output for a single scanned document.
// A nil Blocks slice means the block list was absent from the input.
type Document struct {
	Blocks []Block `json:"Blocks" yaml:"blocks"`
}

// Lines builds a document whose blocks are all LINE blocks with the given
// text, in order.
func Lines(texts ...string) *Document {
	blocks := make([]Block, len(texts))
	for i, t := range texts {
		blocks[i] = Block{BlockType: BlockLine, Text: t}
	}
	return &Document{Blocks: blocks}
}
