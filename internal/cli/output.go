package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/happyhackingspace/bow"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// encoded is the JSON shape printed by fit and transform.
type encoded struct {
	Features []string `json:"features"`
	Matrix   [][]int  `json:"matrix,omitempty"`
	Query    string   `json:"query,omitempty"`
	Vector   []int    `json:"vector,omitempty"`
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
}

func writeMatrix(w io.Writer, format string, features []string, m bow.Matrix) error {
	if format == formatJSON {
		return writeJSON(w, encoded{Features: features, Matrix: matrixRows(m)})
	}
	table := newTable(w, append([]string{"doc"}, features...))
	for i, row := range m {
		table.Append(append([]string{strconv.Itoa(i)}, formatCounts(row)...))
	}
	table.Render()
	return nil
}

func writeVector(w io.Writer, format string, features []string, vec bow.Vector) error {
	if format == formatJSON {
		return writeJSON(w, encoded{Features: features, Vector: vec})
	}
	table := newTable(w, features)
	table.Append(formatCounts(vec))
	table.Render()
	return nil
}

func writeFeatures(w io.Writer, format string, features []string) error {
	if format == formatJSON {
		return writeJSON(w, encoded{Features: features})
	}
	table := newTable(w, []string{"index", "feature"})
	for i, f := range features {
		table.Append([]string{strconv.Itoa(i), f})
	}
	table.Render()
	return nil
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func matrixRows(m bow.Matrix) [][]int {
	return lo.Map(m, func(row bow.Vector, _ int) []int { return row })
}

func formatCounts(vec bow.Vector) []string {
	return lo.Map(vec, func(c int, _ int) string { return strconv.Itoa(c) })
}
