package ocr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/procurehq/po-intake/internal/entity"
)

// ParseTesseractTSV converts tesseract's TSV output (tsv config, one record
// per recognized element) into words. Only word-level records (level 5) with
// non-empty text are kept; tesseract marks absent confidence as -1, which the
// input contract treats as invalid, so those words are dropped. Confidence is
// rescaled from 0-100 to [0,1].
func ParseTesseractTSV(r io.Reader) ([]entity.OCRWord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []entity.OCRWord
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 && strings.HasPrefix(line, "level\t") {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 12 {
			return nil, fmt.Errorf("tsv line %d: expected 12 columns, got %d", lineNo, len(fields))
		}

		level, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tsv line %d: bad level: %w", lineNo, err)
		}
		if level != 5 {
			continue
		}
		text := strings.TrimSpace(fields[11])
		if text == "" {
			continue
		}

		left, err1 := strconv.ParseFloat(fields[6], 64)
		top, err2 := strconv.ParseFloat(fields[7], 64)
		width, err3 := strconv.ParseFloat(fields[8], 64)
		height, err4 := strconv.ParseFloat(fields[9], 64)
		conf, err5 := strconv.ParseFloat(fields[10], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			return nil, fmt.Errorf("tsv line %d: bad geometry or confidence", lineNo)
		}
		if conf < 0 {
			continue
		}

		words = append(words, entity.OCRWord{
			Text:       text,
			Confidence: conf / 100,
			X:          left,
			Y:          top,
			Width:      width,
			Height:     height,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tsv: %w", err)
	}
	return words, nil
}
