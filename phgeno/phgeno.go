// Package phgeno reads phased genotype matrices in phgeno format: one
// line per marker, one character per haplotype, so a file with N
// samples carries 2N characters per line.
package phgeno

import (
	"bufio"
	"io"
	"log"
)

// Allele characters. The truth convention for missing data ('9')
// differs from the estimate convention ('?') and both must be honored.
const (
	Ref          byte = '0'
	Alt          byte = '1'
	MissingTruth byte = '9'
	MissingEst   byte = '?'
)

// maxLineBytes bounds one marker line; one character per haplotype
// means this supports files with several million haplotypes.
const maxLineBytes = 16 * 1024 * 1024

// A Reader yields one allele row per marker from a phgeno stream.
// Each line first has 2*skipSamples leading haplotype characters
// discarded; haplotypes belonging to omitted samples are then consumed
// but not returned. Omit indices number samples after the skipped
// block, so the true-set reader is built with zero skip and a nil
// omit set.
type Reader struct {
	scanner  *bufio.Scanner
	name     string
	skipHaps int
	omit     map[int]bool
	row      []byte
	line     int
}

func NewReader(r io.Reader, name string, numSamples, skipSamples int, omit map[int]bool) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{
		scanner:  scanner,
		name:     name,
		skipHaps: 2 * skipSamples,
		omit:     omit,
		row:      make([]byte, 2*numSamples),
	}
}

// Next returns the allele characters for the next marker, exactly
// 2*numSamples of them, and false once the stream is exhausted. The
// returned slice is reused between calls. A line with too few
// haplotypes after skip and omission is fatal: row misalignment would
// silently corrupt every downstream statistic.
func (r *Reader) Next() ([]byte, bool) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			log.Fatalf("ERROR: reading %s: %v", r.name, err)
		}
		return nil, false
	}
	r.line++
	line := r.scanner.Bytes()
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if r.skipHaps > len(line) {
		log.Fatalf("ERROR: %s line %d: fewer than the %d haplotypes to be skipped", r.name, r.line, r.skipHaps)
	}
	line = line[r.skipHaps:]

	var got int
	for curHap := 0; got < len(r.row) && curHap < len(line); curHap++ {
		if r.omit[curHap/2] {
			continue
		}
		r.row[got] = line[curHap]
		got++
	}
	if got != len(r.row) {
		log.Fatalf("ERROR: %s line %d: expected %d haplotypes after skip/omit, found %d",
			r.name, r.line, len(r.row), got)
	}
	return r.row, true
}

// Markers reports how many marker lines have been read so far.
func (r *Reader) Markers() int {
	return r.line
}
