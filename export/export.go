// Package export renders the posterior outputs for downstream consumers.
//
// The one exact format contract of the engine lives here: the thinned-sample
// table carries the log-posterior column first, then one column per
// registered parameter name, in registration order. Both the CSV writer and
// the human-readable table renderer honor it.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/bayesmc/chain"
	"github.com/katalvlaran/bayesmc/sampler"
)

// LogPosteriorColumn is the name of the leading column of the sample table.
const LogPosteriorColumn = "LogPosterior"

// ErrColumnMismatch indicates a sample whose dimension disagrees with the
// parameter-name list.
var ErrColumnMismatch = errors.New("export: sample dimension does not match parameter names")

// Header returns the column names of the thinned-sample table:
// the log-posterior first, then the parameters in registration order.
func Header(names []string) []string {
	out := make([]string, 0, len(names)+1)
	out = append(out, LogPosteriorColumn)
	return append(out, names...)
}

// Rows converts samples into string cells aligned with Header(names).
func Rows(names []string, samples []chain.Sample) ([][]string, error) {
	rows := make([][]string, len(samples))
	for i, s := range samples {
		if s.Dim() != len(names) {
			return nil, fmt.Errorf("%w: sample %d has %d parameters, %d names", ErrColumnMismatch, i, s.Dim(), len(names))
		}
		row := make([]string, 0, len(names)+1)
		row = append(row, formatFloat(s.LogPosterior()))
		for j := 0; j < s.Dim(); j++ {
			row = append(row, formatFloat(s.Parm(j)))
		}
		rows[i] = row
	}
	return rows, nil
}

// WriteCSV writes the thinned-sample table as CSV.
func WriteCSV(w io.Writer, names []string, samples []chain.Sample) error {
	rows, err := Rows(names, samples)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(names)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderSample renders the thinned-sample table for human consumption.
func RenderSample(w io.Writer, names []string, samples []chain.Sample) error {
	rows, err := Rows(names, samples)
	if err != nil {
		return err
	}
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(Header(names))
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderSummary renders the per-parameter posterior summary (mean, standard
// deviation and the equal-tailed 95% credible interval) plus the LPML line.
func RenderSummary(w io.Writer, res *sampler.Result) error {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Parameter", "Mean", "StdDev", "2.5%", "97.5%"})
	for i, name := range res.Names {
		sd := math.Sqrt(res.Covariance.At(i, i))
		row := []string{
			name,
			formatFloat(res.Mean[i]),
			formatFloat(sd),
			formatFloat(res.Lower[i]),
			formatFloat(res.Upper[i]),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "LPML: %s\n", formatFloat(res.LPML))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
