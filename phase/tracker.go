// Package phase holds the per-sample phase state machine, the trio
// ambiguity filter, the statistics aggregator, and the lock-step
// driver that compares an estimated phasing against a phased truth
// set.
package phase

import (
	"log"

	"github.com/williamslab/switch-err/phgeno"
)

// Orientation relates the estimated homologs to the true homologs for
// one sample: Normal means estimated haplotype 0 carries true
// haplotype 0.
type Orientation int8

const (
	Unknown Orientation = iota
	Normal
	Inverted
)

func (o Orientation) flip() Orientation {
	if o == Normal {
		return Inverted
	}
	return Normal
}

// Outcome classifies one (estimated, true) allele-pair observation.
type Outcome int8

const (
	MissingTruth Outcome = iota // a true allele is missing; the site carries no information
	MissingEst                  // the estimated genotype is missing
	NoInfo                      // homozygous before the orientation is known
	Established                 // first het site; orientation fixed, not counted as a het site
	HomMatch                    // homozygous site, consistent under the current orientation
	HetMatch                    // het site, phase agrees with the current orientation
	Switch                      // het site, phase agrees only with the opposite orientation
)

// A Tracker is the phase state machine for one sample. Orientation is
// set exactly once at the first fully observed het site and flips on
// every switch error afterward; it is never reset.
type Tracker struct {
	Sample      int
	Orientation Orientation
	LastSwitch  int // marker index of the most recent switch
	Switches    int
}

// NewTrackers builds one zeroed tracker per sample.
func NewTrackers(numSamples int) []Tracker {
	trackers := make([]Tracker, numSamples)
	for i := range trackers {
		trackers[i].Sample = i
	}
	return trackers
}

// Observe consumes the allele pairs for one marker; locus is the
// 0-based marker index, used only for diagnostics. On a Switch the
// stored orientation flips for all subsequent markers; switch
// bookkeeping for block reporting is done separately via
// RecordSwitch. Any combination of alleles the orientation model
// cannot represent panics: it means the two streams are not truly
// comparable and every downstream statistic would be meaningless.
func (t *Tracker) Observe(est, truth [2]byte, locus int) Outcome {
	for h := 0; h < 2; h++ {
		if truth[h] != phgeno.Ref && truth[h] != phgeno.Alt && truth[h] != phgeno.MissingTruth {
			log.Panicf("sample %d locus %d: invalid true allele %q", t.Sample, locus, truth[h])
		}
	}
	if truth[0] == phgeno.MissingTruth || truth[1] == phgeno.MissingTruth {
		return MissingTruth
	}
	if est[0] == phgeno.MissingEst || est[1] == phgeno.MissingEst {
		// the phaser marks the whole genotype missing, never one side
		if est[0] != est[1] {
			log.Panicf("sample %d locus %d: estimate missing for only one haplotype", t.Sample, locus)
		}
		return MissingEst
	}
	if est[0] == phgeno.MissingTruth || est[1] == phgeno.MissingTruth {
		log.Panicf("sample %d locus %d: truth-style missing allele '9' in estimate", t.Sample, locus)
	}

	if t.Orientation == Unknown {
		if truth[0] == truth[1] {
			if est[0] != est[1] || est[0] != truth[0] {
				log.Panicf("sample %d locus %d: est %c/%c disagrees with homozygous truth %c/%c",
					t.Sample, locus, est[0], est[1], truth[0], truth[1])
			}
			return NoInfo
		}
		// First het site: fix the homolog correspondence. Not counted
		// as a het site, since there is no previous het site it could
		// be switched against.
		if est[0] == truth[0] {
			if est[1] != truth[1] {
				log.Panicf("sample %d locus %d: est %c/%c inconsistent with truth %c/%c",
					t.Sample, locus, est[0], est[1], truth[0], truth[1])
			}
			t.Orientation = Normal
		} else {
			if est[0] != truth[1] || est[1] != truth[0] {
				log.Panicf("sample %d locus %d: est %c/%c inconsistent with truth %c/%c",
					t.Sample, locus, est[0], est[1], truth[0], truth[1])
			}
			t.Orientation = Inverted
		}
		return Established
	}

	h0, h1 := 0, 1
	if t.Orientation == Inverted {
		h0, h1 = 1, 0
	}
	if est[h0] == truth[0] {
		if est[h1] != truth[1] {
			log.Panicf("sample %d locus %d: est %c/%c matches truth %c/%c on only one homolog",
				t.Sample, locus, est[h0], est[h1], truth[0], truth[1])
		}
		if truth[0] == truth[1] {
			return HomMatch
		}
		return HetMatch
	}
	if est[h0] != truth[1] || est[h1] != truth[0] {
		log.Panicf("sample %d locus %d: est %c/%c matches truth %c/%c under neither orientation",
			t.Sample, locus, est[h0], est[h1], truth[0], truth[1])
	}
	// truth[0] == truth[1] cannot reach here: est[h0] != truth[0] and
	// est[h0] == truth[1] exclude a homozygous truth.
	t.Orientation = t.Orientation.flip()
	return Switch
}

// RecordSwitch notes a switch error at locus and returns the 0-based
// index of the switch for this sample and the length of the block it
// ends.
func (t *Tracker) RecordSwitch(locus int) (idx, blockLength int) {
	idx = t.Switches
	blockLength = locus - t.LastSwitch
	t.Switches++
	t.LastSwitch = locus
	return idx, blockLength
}
