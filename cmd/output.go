package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"accessctl/pkg/models"
)

// format resolves --json and --output into one of table, json, yaml.
func format() string {
	if jsonOutput {
		return "json"
	}
	return strings.ToLower(outputFormat)
}

// render prints v as JSON or YAML, or calls table for the default layout.
func render(v any, table func(w *tabwriter.Writer)) {
	if err := renderTo(os.Stdout, format(), v, table); err != nil {
		fmt.Printf("Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

func renderTo(out io.Writer, f string, v any, table func(w *tabwriter.Writer)) error {
	switch f {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		table(w)
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// header writes the column titles and the dashed underline.
func header(w io.Writer, cols ...string) {
	under := make([]string, len(cols))
	for i, c := range cols {
		under[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	fmt.Fprintln(w, strings.Join(under, "\t"))
}

// footer summarizes paging and any records the backend sent in a shape that
// could not be read.
func footer(w io.Writer, p models.PagingDescriptor, rejected []models.RecordError) {
	fmt.Fprintf(w, "\nPage %d/%d (%d total, %d per page)\n", p.CurrentPage, max(p.TotalPages, 1), p.Total, p.PerPage)
	if len(rejected) > 0 {
		fmt.Fprintf(w, "Warning: %d record(s) could not be read\n", len(rejected))
	}
}

// val prints an optional field.
func val[S ~string](s *S) string {
	if s == nil || *s == "" {
		return "-"
	}
	return string(*s)
}

func intVal(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

func exitOnError(action string, err error) {
	if err != nil {
		fmt.Printf("Error %s: %v\n", action, err)
		os.Exit(1)
	}
}
