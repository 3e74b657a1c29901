// Package report renders test results for humans (text) or tools (json, yaml).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/solo-io/dbt/pkg/dbt"
	"gopkg.in/yaml.v2"
)

const (
	FormatText = "text"
	FormatJson = "json"
	FormatYaml = "yaml"
)

var Formats = []string{FormatText, FormatJson, FormatYaml}

// CheckFormat fails for formats Write does not know.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, expected one of: %s", format, strings.Join(Formats, ", "))
}

type Summary struct {
	Passed    int `json:"passed" yaml:"passed"`
	Failed    int `json:"failed" yaml:"failed"`
	Errored   int `json:"errored" yaml:"errored"`
	Ignored   int `json:"ignored" yaml:"ignored"`
	RunErrors int `json:"run_errors" yaml:"run_errors"`
}

// OK is true when nothing failed, errored or could not be run.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0 && s.RunErrors == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d errored, %d ignored, %d could not run",
		s.Passed, s.Failed, s.Errored, s.Ignored, s.RunErrors)
}

func Summarize(results []*dbt.Result, errs []error) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		switch r.Status {
		case dbt.Passed:
			s.Passed++
		case dbt.Failed:
			s.Failed++
		case dbt.Errored:
			s.Errored++
		case dbt.Ignored:
			s.Ignored++
		}
	}
	for _, err := range errs {
		if err != nil {
			s.RunErrors++
		}
	}
	return s
}

type document struct {
	Results []*dbt.Result `json:"results" yaml:"results"`
	Errors  []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
	Summary Summary       `json:"summary" yaml:"summary"`
}

// Write renders results and run errors in format. nil entries are skipped.
func Write(w io.Writer, format string, results []*dbt.Result, errs []error) error {
	doc := document{Summary: Summarize(results, errs)}
	for _, r := range results {
		if r != nil {
			doc.Results = append(doc.Results, r)
		}
	}
	for _, err := range errs {
		if err != nil {
			doc.Errors = append(doc.Errors, err.Error())
		}
	}

	switch format {
	case FormatText:
		return writeText(w, doc)
	case FormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYaml:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return CheckFormat(format)
	}
}

func writeText(w io.Writer, doc document) error {
	var b strings.Builder
	for _, r := range doc.Results {
		fmt.Fprintf(&b, "%-8s %s [%v %s]\n", r.Status, r.Test, r.Kind, r.Version)
		for _, warning := range r.Warnings {
			fmt.Fprintf(&b, "    warning: %s\n", warning)
		}
		if r.Status != dbt.Failed && r.Status != dbt.Errored {
			continue
		}
		writeIndented(&b, r.Message)
		if r.Output != nil {
			fmt.Fprintf(&b, "    --- debugger stdout (exit %v) ---\n", r.Output.ExitStatus)
			writeIndented(&b, r.Output.Stdout)
			if r.Output.Stderr != "" {
				fmt.Fprintf(&b, "    --- debugger stderr ---\n")
				writeIndented(&b, r.Output.Stderr)
			}
		}
	}
	for _, e := range doc.Errors {
		fmt.Fprintf(&b, "%-8s %s\n", "ERROR", e)
	}
	fmt.Fprintln(&b, doc.Summary)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(b, "    %s\n", line)
	}
}
