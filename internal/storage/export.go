package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/gravsim/internal/dynamo"
)

type ExportData struct {
	Run    RunMetadata    `json:"run"`
	Frames []dynamo.Frame `json:"frames"`
}

// ExportJSON writes a run's metadata and diagnostics as one JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, frames []dynamo.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: meta, Frames: frames})
}
