package phase

import (
	"fmt"
	"io"
	"log"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/williamslab/switch-err/ancestry"
	"github.com/williamslab/switch-err/blocks"
	"github.com/williamslab/switch-err/phgeno"
)

// Options configures one comparison run. TrioSuccession and
// OtherParent are mutually exclusive pairing strategies; Ancestry,
// when non-nil, holds one reader per sample.
type Options struct {
	NumSamples     int
	TrioSuccession bool  // parents adjacent in the files, transmitted haplotype first
	OtherParent    []int // pair table from a trio-pairs file, nil when unused
	Verbose        bool
	Ancestry       []*ancestry.Reader
	Blocks         *blocks.Writer // optional switch-block table
}

// Compare runs the lock-step scan of the estimated and true phgeno
// streams and returns the accumulated statistics. Verbose per-switch
// lines and the final block lines go to errOut.
func Compare(opts Options, est, truth *phgeno.Reader, errOut io.Writer) *Stats {
	trackers := NewTrackers(opts.NumSamples)
	stats := new(Stats)
	buckets := make([]int, opts.NumSamples)
	warnedOneHapMissing := false

	for {
		estRow, estOk := est.Next()
		trueRow, trueOk := truth.Next()
		if estOk != trueOk {
			if estOk {
				log.Fatalf("ERROR: true phgeno ended at marker %d but estimated phgeno continues; files are not comparable",
					stats.Markers)
			}
			log.Fatalf("ERROR: estimated phgeno ended at marker %d but true phgeno continues; files are not comparable",
				stats.Markers)
		}
		if !estOk {
			break
		}
		locus := stats.Markers
		stats.Markers++

		// Ancestry streams advance exactly once per sample per marker,
		// before any per-sample skip can short-circuit the loop below;
		// otherwise a skipped sample's stream would fall out of step.
		for samp := range buckets {
			buckets[samp] = ancestry.NumBuckets - 1
			if opts.Ancestry != nil {
				buckets[samp] = opts.Ancestry[samp].Next()
			}
		}

		for samp := 0; samp < opts.NumSamples; samp++ {
			tr := &trackers[samp]
			estPair := pairAt(estRow, samp)
			truePair := pairAt(trueRow, samp)

			// The trio filter only applies when the current sample's
			// truth is fully observed; a half-missing pair must fall
			// through to the missing-truth outcome, not masquerade as
			// a het parent.
			if truePair[0] != phgeno.MissingTruth && truePair[1] != phgeno.MissingTruth {
				if opts.TrioSuccession && samp%2 == 0 && samp+1 < opts.NumSamples {
					if TripleHet(truePair, pairAt(trueRow, samp+1)) {
						// ambiguous for the whole pair: skip the other
						// parent for this marker as well
						samp++
						continue
					}
				} else if opts.OtherParent != nil {
					if other := opts.OtherParent[samp]; other >= 0 && TripleHet(truePair, pairAt(trueRow, other)) {
						continue
					}
				}
			}

			switch tr.Observe(estPair, truePair, locus) {
			case MissingTruth:
				if !warnedOneHapMissing && (truePair[0] != phgeno.MissingTruth || truePair[1] != phgeno.MissingTruth) {
					log.Println("WARNING: missing data for only one haplotype in truth set")
					warnedOneHapMissing = true
				}
			case MissingEst:
				stats.MissingEst++
			case HetMatch:
				stats.AddHet(buckets[samp])
			case Switch:
				stats.AddHet(buckets[samp])
				stats.AddSwitch(buckets[samp])
				idx, blockLength := tr.RecordSwitch(locus)
				if opts.Verbose {
					fmt.Fprintf(errOut, "%d %d %d %d\n", samp, idx, locus, blockLength)
				}
				if opts.Blocks != nil {
					err := opts.Blocks.Write(samp, idx, locus, blockLength)
					exception.PanicOnErr(err)
				}
			}
		}
	}

	// final block per sample, from the last switch to the last marker
	if opts.Verbose || opts.Blocks != nil {
		locus := stats.Markers - 1
		for samp := range trackers {
			tr := &trackers[samp]
			blockLength := locus - tr.LastSwitch
			if opts.Verbose {
				fmt.Fprintf(errOut, "%d %d %d %d\n", samp, tr.Switches, locus, blockLength)
			}
			if opts.Blocks != nil {
				err := opts.Blocks.Write(samp, tr.Switches, locus, blockLength)
				exception.PanicOnErr(err)
			}
		}
	}

	return stats
}

func pairAt(row []byte, samp int) [2]byte {
	return [2]byte{row[2*samp], row[2*samp+1]}
}
