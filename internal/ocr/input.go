// Package ocr implements this side of the OCR collaborator contract: decoding
// and validating OCR dumps, grouping recognized words into visual rows, and
// adapting tesseract TSV output. It never invokes an OCR engine.
package ocr

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/procurehq/po-intake/internal/entity"
)

// Input is one document's worth of OCR output: the raw newline-delimited text
// plus the recognized words with their bounding boxes. Words are optional;
// without them the pipeline falls back to text-line reconstruction.
type Input struct {
	Text  string           `json:"text"`
	Words []entity.OCRWord `json:"words,omitempty"`
}

// DecodeInput reads, validates, and decodes an OCR dump. Words with negative
// confidence are treated as invalid and dropped here, so downstream stages
// only ever see usable words.
func DecodeInput(r io.Reader) (*Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ocr dump: %w", err)
	}
	if err := ValidateInput(raw); err != nil {
		return nil, err
	}

	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode ocr dump: %w", err)
	}

	kept := in.Words[:0]
	for _, w := range in.Words {
		if w.Confidence < 0 {
			continue
		}
		kept = append(kept, w)
	}
	in.Words = kept
	return &in, nil
}

// Rows groups the input's words into visual rows by vertical proximity. Words
// whose vertical centers fall within half the average word height of a row's
// center share that row. Rows come back sorted by top, words by x.
func (in *Input) Rows() []entity.OCRRow {
	return GroupWords(in.Words)
}

// GroupWords clusters words into rows. Tolerance scales with the average word
// height so dense receipts and sparse invoices both group sensibly.
func GroupWords(words []entity.OCRWord) []entity.OCRRow {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]entity.OCRWord, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return center(sorted[i]) < center(sorted[j])
	})

	tolerance := avgHeight(sorted) * 0.6
	if tolerance < 4 {
		tolerance = 4
	}

	var rows []entity.OCRRow
	var current []entity.OCRWord
	rowCenter := 0.0
	for _, w := range sorted {
		if len(current) == 0 || center(w)-rowCenter <= tolerance {
			current = append(current, w)
			rowCenter = meanCenter(current)
			continue
		}
		rows = append(rows, finishRow(current))
		current = []entity.OCRWord{w}
		rowCenter = center(w)
	}
	rows = append(rows, finishRow(current))
	return rows
}

func finishRow(words []entity.OCRWord) entity.OCRRow {
	sort.SliceStable(words, func(i, j int) bool { return words[i].X < words[j].X })
	top := words[0].Y
	for _, w := range words[1:] {
		if w.Y < top {
			top = w.Y
		}
	}
	return entity.OCRRow{Words: words, Top: top}
}

func center(w entity.OCRWord) float64 {
	return w.Y + w.Height/2
}

func meanCenter(words []entity.OCRWord) float64 {
	sum := 0.0
	for _, w := range words {
		sum += center(w)
	}
	return sum / float64(len(words))
}

func avgHeight(words []entity.OCRWord) float64 {
	sum := 0.0
	n := 0
	for _, w := range words {
		if w.Height > 0 {
			sum += w.Height
			n++
		}
	}
	if n == 0 {
		return 12
	}
	return sum / float64(n)
}
