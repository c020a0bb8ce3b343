package ocr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// inputSchema constrains OCR dumps before decoding: text is required, and
// every word must carry its full bounding box. Confidence is allowed to be
// negative here; negative values mean "absent" and are dropped during decode.
const inputSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["text"],
  "additionalProperties": false,
  "properties": {
    "text": { "type": "string" },
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text", "confidence", "x", "y", "width", "height"],
        "additionalProperties": false,
        "properties": {
          "text":       { "type": "string" },
          "confidence": { "type": "number", "maximum": 1 },
          "x":          { "type": "number" },
          "y":          { "type": "number" },
          "width":      { "type": "number", "minimum": 0 },
          "height":     { "type": "number", "minimum": 0 }
        }
      }
    }
  }
}`

var compiledInputSchema = jsonschema.MustCompileString("ocr-input.json", inputSchema)

// ValidateInput checks a raw OCR dump against the input schema.
func ValidateInput(raw []byte) error {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("ocr dump is not valid JSON: %w", err)
	}
	if err := compiledInputSchema.Validate(doc); err != nil {
		return fmt.Errorf("ocr dump failed schema validation: %w", err)
	}
	return nil
}
