package tournament

import (
	"encoding/json"
	"fmt"

	"github.com/lox/flip7sim/internal/fileutil"
)

// WriteReport writes the league results as indented JSON. The write is
// atomic so a crashed run never leaves a truncated report behind.
func WriteReport(path string, results *Results) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
