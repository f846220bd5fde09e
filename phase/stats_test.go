package phase

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportSwitchLine(t *testing.T) {
	stats := &Stats{Markers: 2, SwitchErrors: 1, HetSites: 1}
	var buf bytes.Buffer
	stats.Report(&buf, 1, false)
	require.Equal(t, "switch 1 / 1 = 1.000000\n", buf.String())
}

func TestReportZeroHetDenominator(t *testing.T) {
	// no informative het sites: the rate is undefined and reported as
	// NaN rather than crashing or pretending to be zero
	stats := &Stats{Markers: 1}
	var buf bytes.Buffer
	stats.Report(&buf, 2, false)
	require.Equal(t, "switch 0 / 0 = NaN\n", buf.String())
}

func TestReportMissingLineOnlyWhenPresent(t *testing.T) {
	stats := &Stats{Markers: 3, HetSites: 1, MissingEst: 1}
	var buf bytes.Buffer
	stats.Report(&buf, 1, false)
	require.Equal(t, "switch 0 / 1 = 0.000000\nmissing 1 / 3 = 0.333333\n", buf.String())

	stats.MissingEst = 0
	buf.Reset()
	stats.Report(&buf, 1, false)
	require.NotContains(t, buf.String(), "missing")
}

func TestReportAncestryClasses(t *testing.T) {
	stats := &Stats{
		Markers:           10,
		SwitchErrors:      3,
		HetSites:          6,
		ClassSwitchErrors: [4]int{1, 0, 1, 1},
		ClassHetSites:     [4]int{2, 1, 2, 1},
	}
	var buf bytes.Buffer
	stats.Report(&buf, 1, true)
	want := "switch 3 / 6 = 0.500000\n" +
		"Homozy_POP1:  1 / 2 = 0.500000\n" +
		"Heterozygous: 0 / 1 = 0.000000\n" +
		"Homozy_POP2:  1 / 2 = 0.500000\n" +
		"Ambiguous:    1 / 1 = 1.000000\n"
	require.Equal(t, want, buf.String())
}
