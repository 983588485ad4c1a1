package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/2beens/playerprogress/internal/progress"
)

// ReadExport decodes a player export: {"physical":[],"skill":[],"match":[],"practice":[]}.
// Missing categories stay empty.
func ReadExport(r io.Reader) (progress.Input, error) {
	var in progress.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return progress.Input{}, fmt.Errorf("decode export: %w", err)
	}
	return in, nil
}

// ReadExportFile reads the export from path, or from stdin when path is "-".
func ReadExportFile(path string, stdin io.Reader) (progress.Input, error) {
	if path == "-" {
		return ReadExport(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return progress.Input{}, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	return ReadExport(f)
}
