package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/newsclip"
)

// reportEnvelope is the JSON shape the analyze command prints: a batch-level
// success flag and message plus the per-item results.
type reportEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Results []newsclip.ItemResult `json:"results"`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.Run(deps.Ctx, c.IDs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	envelope := reportEnvelope{
		Success: true,
		Message: fmt.Sprintf("analyzed %d items: %d succeeded, %d failed",
			len(report.Results), report.Succeeded, report.Failed),
		Results: report.Results,
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}
