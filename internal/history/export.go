// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes runs to w as a YAML document.
func ExportYAML(w io.Writer, runs []Run) error {
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes runs to w as indented JSON.
func ExportJSON(w io.Writer, runs []Run) error {
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
