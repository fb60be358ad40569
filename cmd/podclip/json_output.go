package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON prints v for --json callers: two-space indented, one trailing
// newline, empty lists kept as [] by the callers that build them.
func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
