package entity

// OCRWord is one recognized token with its pixel-space bounding box, as produced
// by the OCR collaborator. Confidence is in [0,1]; values below 0 are treated as
// invalid upstream and never reach the pipeline.
type OCRWord struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// OCRRow is a set of words grouped by vertical proximity into one visual line.
// Words are ordered by X ascending; rows are ordered by Top ascending.
type OCRRow struct {
	Words []OCRWord `json:"words"`
	Top   float64   `json:"top"`
}

// Text joins the row's words into a single line.
func (r OCRRow) Text() string {
	out := ""
	for i, w := range r.Words {
		if i > 0 {
			out += " "
		}
		out += w.Text
	}
	return out
}
