package phgeno

import (
	"log"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// ReadOmitList reads whitespace-separated sample indices to omit from
// the estimated stream. Indices number samples after any skipped
// block.
func ReadOmitList(filename string) map[int]bool {
	file := fileio.EasyOpen(filename)
	omit := make(map[int]bool)
	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		for _, field := range strings.Fields(line) {
			id, err := strconv.Atoi(field)
			if err != nil {
				log.Fatalf("ERROR: omit list %s: bad sample index %q", filename, field)
			}
			if id < 0 {
				log.Fatalf("ERROR: omit list %s: negative sample index %d", filename, id)
			}
			omit[id] = true
		}
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return omit
}

// ReadTrioPairs reads one pair of trio-parent sample indices per line
// and returns a table mapping each sample to its partner, -1 when
// unpaired. The relation is symmetric, each sample may appear in at
// most one pair, and the pairs must cover all samples.
func ReadTrioPairs(filename string, numSamples int) []int {
	file := fileio.EasyOpen(filename)
	otherParent := make([]int, numSamples)
	for i := range otherParent {
		otherParent[i] = -1
	}
	var numPairs, lineno int
	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		lineno++
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Fatalf("ERROR: trio pair file %s line %d: expected two sample indices, found %d",
				filename, lineno, len(fields))
		}
		id1 := parseSampleIndex(filename, lineno, fields[0], numSamples)
		id2 := parseSampleIndex(filename, lineno, fields[1], numSamples)
		if id1 == id2 {
			log.Fatalf("ERROR: trio pair file %s line %d: sample %d paired with itself", filename, lineno, id1)
		}
		if otherParent[id1] != -1 || otherParent[id2] != -1 {
			log.Fatalf("ERROR: trio pair file %s line %d: sample paired twice", filename, lineno)
		}
		otherParent[id1] = id2
		otherParent[id2] = id1
		numPairs++
	}
	err := file.Close()
	exception.PanicOnErr(err)
	if numPairs*2 != numSamples {
		log.Fatalf("ERROR: trio pair file %s: %d pairs do not cover %d samples", filename, numPairs, numSamples)
	}
	return otherParent
}

func parseSampleIndex(filename string, lineno int, field string, numSamples int) int {
	id, err := strconv.Atoi(field)
	if err != nil || id < 0 || id >= numSamples {
		log.Fatalf("ERROR: trio pair file %s line %d: bad sample index %q", filename, lineno, field)
	}
	return id
}
