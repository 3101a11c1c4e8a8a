package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/TFMV/spectra/pkg/metrics"
)

type resultRow struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

type operatorRow struct {
	Family   string `json:"family"`
	Name     string `json:"name"`
	Defaults string `json:"defaults,omitempty"`
}

type demoRow struct {
	Metric string  `json:"metric"`
	Vector float64 `json:"vector"`
	Point  int     `json:"point"`
}

type transformResult struct {
	Transform string  `json:"transform"`
	Input     string  `json:"input"`
	Output    string  `json:"output"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Channels  int     `json:"channels"`
	MeanIn    float64 `json:"mean_in"`
	MeanOut   float64 `json:"mean_out"`
}

type statsReport struct {
	Calls        uint64              `json:"calls"`
	Errors       uint64              `json:"errors"`
	AvgLatencyMs float64             `json:"avg_latency_ms"`
	Series       []metrics.CallCount `json:"series"`
}

// render writes v as JSON or as a table depending on --output.
func render(cmd *cobra.Command, v interface{}) error {
	if output == "json" {
		return writeJSON(cmd, v)
	}
	return writeTable(cmd.OutOrStdout(), v)
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func writeTable(w io.Writer, v interface{}) error {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)

	switch rows := v.(type) {
	case resultRow:
		table.SetHeader([]string{"Metric", "Distance"})
		table.Append([]string{rows.Metric, formatFloat(rows.Value)})
	case []operatorRow:
		table.SetHeader([]string{"Family", "Name", "Defaults"})
		for _, r := range rows {
			table.Append([]string{r.Family, r.Name, r.Defaults})
		}
	case []demoRow:
		table.SetHeader([]string{"Metric", "[1,2,3] vs [4,5,6]", "(1,2) vs (4,6)"})
		for _, r := range rows {
			table.Append([]string{r.Metric, formatFloat(r.Vector), strconv.Itoa(r.Point)})
		}
	case transformResult:
		table.SetHeader([]string{"Field", "Value"})
		table.Append([]string{"Transform", rows.Transform})
		table.Append([]string{"Input", rows.Input})
		table.Append([]string{"Output", rows.Output})
		table.Append([]string{"Size", fmt.Sprintf("%dx%dx%d", rows.Width, rows.Height, rows.Channels)})
		table.Append([]string{"Mean In", formatFloat(rows.MeanIn)})
		table.Append([]string{"Mean Out", formatFloat(rows.MeanOut)})
	case []metrics.CallCount:
		table.SetHeader([]string{"Family", "Operator", "Status", "Calls"})
		for _, r := range rows {
			table.Append([]string{r.Family, r.Operator, r.Status, strconv.FormatUint(r.Count, 10)})
		}
	default:
		return fmt.Errorf("no table layout for %T", v)
	}

	table.Render()
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
