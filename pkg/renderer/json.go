package renderer

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnreport/pkg/domain/model"
)

// WriteJSON persists the report to path for external pickup (e.g. a CI
// artifact step)
func WriteJSON(path string, report *model.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal report", goerr.V("path", path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	return nil
}

// ReadJSON loads a persisted report
func ReadJSON(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report file", goerr.V("path", path))
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, goerr.Wrap(err, "failed to parse report file", goerr.V("path", path))
	}
	return &report, nil
}
