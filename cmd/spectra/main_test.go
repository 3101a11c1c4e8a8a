package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/spectra"
	"github.com/TFMV/spectra/pkg/metrics"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, 2.5,-3")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, v)

	v, err = parseVector("4,5,6,")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, v)

	_, err = parseVector("1,x")
	assert.Error(t, err)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "img/lena_negative.png", defaultOutputPath("img/lena.jpg", "Negative"))
	assert.Equal(t, "scan_fourier.png", defaultOutputPath("scan", "fourier"))
}

func TestRunDemo(t *testing.T) {
	rows, err := runDemo(spectra.NewEngine())
	require.NoError(t, err)
	require.Len(t, rows, 6)

	byName := map[string]demoRow{}
	for _, r := range rows {
		byName[r.Metric] = r
	}
	assert.InDelta(t, math.Sqrt(27), byName["euclidean"].Vector, 1e-9)
	assert.Equal(t, 9.0, byName["manhattan"].Vector)
	assert.Equal(t, 3.0, byName["chessboard"].Vector)
	assert.Equal(t, 3.0, byName["hamming"].Vector)
	assert.Equal(t, 5, byName["euclidean"].Point)
	assert.Equal(t, 7, byName["manhattan"].Point)
	assert.Equal(t, 4, byName["chessboard"].Point)
	assert.Equal(t, 2, byName["hamming"].Point)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []operatorRow{
		{Family: "metric", Name: "minkowski", Defaults: "order=3"},
		{Family: "transform", Name: "negative"},
	}))
	out := buf.String()
	assert.Contains(t, out, "minkowski")
	assert.Contains(t, out, "order=3")
	assert.Contains(t, out, "negative")

	buf.Reset()
	require.NoError(t, writeTable(&buf, []metrics.CallCount{
		{Family: "metric", Operator: "cosine", Status: "ok", Count: 12},
	}))
	assert.Contains(t, buf.String(), "12")

	assert.Error(t, writeTable(&buf, 42))
}

func TestNegativeArguments(t *testing.T) {
	t.Cleanup(func() { metricName = "" })

	require.NoError(t, pointsCmd.ParseFlags([]string{"--metric", "manhattan", "1", "-2", "4", "6"}))
	assert.Equal(t, "manhattan", metricName)
	assert.Equal(t, []string{"1", "-2", "4", "6"}, pointsCmd.Flags().Args())

	require.NoError(t, distanceCmd.ParseFlags([]string{"-m", "cosine", "--", "-1,2,3", "4,-5,6"}))
	assert.Equal(t, "cosine", metricName)
	assert.Equal(t, []string{"-1,2,3", "4,-5,6"}, distanceCmd.Flags().Args())

	v, err := parseVector("-1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2, 3}, v)
}

func TestGrayscaleInput(t *testing.T) {
	flag := transformCmd.Flags().Lookup("gray")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
	assert.Contains(t, flag.Usage, "RGB for negative")

	assert.False(t, grayscaleInput("negative", false, false))
	assert.False(t, grayscaleInput(" Negative ", false, false))
	assert.True(t, grayscaleInput("fourier", false, false))
	assert.True(t, grayscaleInput("power_law", false, false))
	assert.True(t, grayscaleInput("negative", true, true))
	assert.False(t, grayscaleInput("fourier", true, false))
}
