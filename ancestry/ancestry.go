// Package ancestry reads HAPMIX-style local ancestry posteriors, one
// file per sample with one record per marker, and assigns
// confidence-gated ancestry classes for stratifying switch errors.
package ancestry

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Class is the local-ancestry zygosity state at one marker.
type Class int

const (
	Ambiguous Class = -1 // no class reaches posterior confidence
	Pop1Homo  Class = 0
	Het       Class = 1
	Pop2Homo  Class = 2
)

// NumBuckets counts the reporting buckets: the three confident
// classes plus one for ambiguous or class-straddling sites.
const NumBuckets = 4

// confidence is the posterior probability a class needs before it is
// trusted.
const confidence = 0.9

// probSumTol bounds how far the three posteriors may drift from
// summing to one before the record is considered corrupt.
const probSumTol = 0.003

// Classify maps one posterior triple to a class.
func Classify(pPop1Homo, pHet, pPop2Homo float64) Class {
	switch {
	case pPop1Homo > confidence:
		return Pop1Homo
	case pHet > confidence:
		return Het
	case pPop2Homo > confidence:
		return Pop2Homo
	default:
		return Ambiguous
	}
}

// Bucket is the reporting bucket for a site given the classes at the
// previous and the current marker: the shared class when the two
// agree and are confident, else the ambiguous bucket. A switch error
// straddles two markers, so both sides must sit in the same confident
// block for the class to count.
func Bucket(prev, cur Class) int {
	if prev == cur && cur != Ambiguous {
		return int(cur)
	}
	return NumBuckets - 1
}

// A Reader yields one reporting bucket per marker for one sample.
type Reader struct {
	file *fileio.EasyReader
	name string
	prev Class
	line int
}

// Open opens the per-sample posterior file <prefix>.<sample>.<chrom>.
func Open(prefix string, sample, chrom int) *Reader {
	name := fmt.Sprintf("%s.%d.%d", prefix, sample, chrom)
	return &Reader{file: fileio.EasyOpen(name), name: name, prev: Ambiguous}
}

// Next reads the record for the next marker and returns the reporting
// bucket shared by the previous and current marker, updating the
// stored previous class. Exactly one call per marker keeps this
// stream row-synchronized with the genotype streams.
func (r *Reader) Next() int {
	line, done := fileio.EasyNextRealLine(r.file)
	if done {
		log.Fatalf("ERROR: %s: ran out of local ancestry records at marker %d", r.name, r.line)
	}
	r.line++
	fields := strings.Fields(line)
	if len(fields) != 4 {
		log.Fatalf("ERROR: %s line %d: malformed local ancestry record %q", r.name, r.line, line)
	}
	var probs [3]float64
	for i := range probs {
		p, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			log.Fatalf("ERROR: %s line %d: malformed local ancestry record %q", r.name, r.line, line)
		}
		probs[i] = p
	}
	if sum := probs[0] + probs[1] + probs[2]; sum < 1-probSumTol || sum > 1+probSumTol {
		log.Panicf("%s line %d: posteriors sum to %f, not 1", r.name, r.line, sum)
	}
	cur := Classify(probs[0], probs[1], probs[2])
	bucket := Bucket(r.prev, cur)
	r.prev = cur
	return bucket
}

// Close releases the underlying file.
func (r *Reader) Close() {
	err := r.file.Close()
	exception.PanicOnErr(err)
}
