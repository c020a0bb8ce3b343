package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t600\t800\t-1\t\n" +
	"4\t1\t1\t1\t1\t0\t10\t40\t400\t14\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t10\t40\t80\t12\t96\tWIDGET-1\n" +
	"5\t1\t1\t1\t1\t2\t100\t41\t40\t12\t91\t3\n" +
	"5\t1\t1\t1\t1\t3\t150\t40\t50\t12\t-1\tsmudge\n" +
	"5\t1\t1\t1\t1\t4\t210\t40\t60\t12\t88\t30.00\n"

func TestParseTesseractTSV(t *testing.T) {
	words, err := ParseTesseractTSV(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	require.Len(t, words, 3, "only level-5 records with non-negative confidence survive")

	assert.Equal(t, "WIDGET-1", words[0].Text)
	assert.InDelta(t, 0.96, words[0].Confidence, 1e-9)
	assert.Equal(t, 10.0, words[0].X)
	assert.Equal(t, 40.0, words[0].Y)
	assert.Equal(t, 80.0, words[0].Width)
	assert.Equal(t, 12.0, words[0].Height)

	assert.Equal(t, "3", words[1].Text)
	assert.Equal(t, "30.00", words[2].Text)
}

func TestParseTesseractTSVShortLine(t *testing.T) {
	_, err := ParseTesseractTSV(strings.NewReader("level\tpage_num\n5\t1\t1\n"))
	assert.Error(t, err)
}

func TestParseTesseractTSVEmpty(t *testing.T) {
	words, err := ParseTesseractTSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}
