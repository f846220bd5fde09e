package phase

import (
	"fmt"
	"io"

	"github.com/williamslab/switch-err/ancestry"
)

// Stats accumulates the aggregate counters for one comparison run.
// The per-class arrays are indexed by ancestry reporting bucket and
// only surface in the report when local ancestry is enabled.
type Stats struct {
	Markers      int
	SwitchErrors int
	HetSites     int
	MissingEst   int

	ClassSwitchErrors [ancestry.NumBuckets]int
	ClassHetSites     [ancestry.NumBuckets]int
}

// AddHet counts one informative het site in the given bucket.
func (s *Stats) AddHet(bucket int) {
	s.HetSites++
	s.ClassHetSites[bucket]++
}

// AddSwitch counts one switch error in the given bucket.
func (s *Stats) AddSwitch(bucket int) {
	s.SwitchErrors++
	s.ClassSwitchErrors[bucket]++
}

// Report writes the final rates. Rates are plain float divisions, so
// a run with no countable het sites prints NaN rather than guessing
// at a rate.
func (s *Stats) Report(out io.Writer, numSamples int, localAnc bool) {
	fmt.Fprintf(out, "switch %d / %d = %f\n", s.SwitchErrors, s.HetSites,
		float64(s.SwitchErrors)/float64(s.HetSites))
	if s.MissingEst > 0 {
		denom := numSamples * s.Markers
		fmt.Fprintf(out, "missing %d / %d = %f\n", s.MissingEst, denom,
			float64(s.MissingEst)/float64(denom))
	}
	if localAnc {
		labels := [ancestry.NumBuckets]string{"Homozy_POP1: ", "Heterozygous:", "Homozy_POP2: ", "Ambiguous:   "}
		for b := 0; b < ancestry.NumBuckets; b++ {
			fmt.Fprintf(out, "%s %d / %d = %f\n", labels[b], s.ClassSwitchErrors[b], s.ClassHetSites[b],
				float64(s.ClassSwitchErrors[b])/float64(s.ClassHetSites[b]))
		}
	}
}
