// switchErr compares an estimated haplotype phasing against a phased
// truth set over the same samples and markers and reports the switch
// error rate, the missing-data rate, and optionally error rates
// stratified by local ancestry class.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/williamslab/switch-err/ancestry"
	"github.com/williamslab/switch-err/blocks"
	"github.com/williamslab/switch-err/phase"
	"github.com/williamslab/switch-err/phgeno"
)

type Settings struct {
	NumSamples     int
	EstFile        string
	TrueFile       string
	SkipSamples    int
	TrioSuccession bool
	TrioPairFile   string
	Verbose        bool
	OmitFile       string
	AncPrefix      string
	Chrom          int
	BlockFile      string
}

func usage() {
	fmt.Print(
		"switchErr - Compare an estimated haplotype phasing against a phased truth set\n" +
			"and report the switch error rate.\n" +
			"Usage:\n" +
			"./switchErr [options] <num samples> <estimated phgeno> <true phgeno>\n\n")
	flag.PrintDefaults()
}

func main() {
	var s Settings
	flag.IntVar(&s.SkipSamples, "s", 0, "Skip this many leading samples in the estimated file")
	flag.BoolVar(&s.TrioSuccession, "t", false, "Trio aware, trio parents in succession; omits triple het sites")
	flag.StringVar(&s.TrioPairFile, "p", "", "Trio aware, file gives parent pair relationships; omits triple het sites")
	flag.BoolVar(&s.Verbose, "v", false, "Verbose: print switch point information to stderr")
	flag.StringVar(&s.OmitFile, "o", "", "File listing sample indices to omit from the estimated file")
	flag.StringVar(&s.AncPrefix, "l", "", "Local ancestry aware, prefix of HAPMIX posterior files named <prefix>.<sample>.<chrom>")
	flag.IntVar(&s.Chrom, "c", 0, "Chromosome suffix of the local ancestry files (required with -l)")
	flag.StringVar(&s.BlockFile, "b", "", "Write the per-sample switch block table to this Arrow IPC file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		log.Fatal("ERROR: expected <num samples> <estimated phgeno> <true phgeno>")
	}
	var err error
	s.NumSamples, err = strconv.Atoi(flag.Arg(0))
	if err != nil || s.NumSamples < 1 {
		log.Fatalf("ERROR: bad sample count %q", flag.Arg(0))
	}
	s.EstFile = flag.Arg(1)
	s.TrueFile = flag.Arg(2)

	if s.TrioSuccession && s.TrioPairFile != "" {
		log.Fatal("ERROR: -t and -p are mutually exclusive pairing strategies")
	}
	if s.TrioSuccession && s.OmitFile != "" {
		log.Fatal("ERROR: -t cannot be combined with -o: omission breaks positional parent pairing")
	}
	if s.AncPrefix != "" && s.Chrom == 0 {
		log.Fatal("ERROR: -l requires the chromosome suffix via -c")
	}

	switchErr(s)
}

func switchErr(s Settings) {
	opts := phase.Options{
		NumSamples:     s.NumSamples,
		TrioSuccession: s.TrioSuccession,
		Verbose:        s.Verbose,
	}

	var omit map[int]bool
	if s.OmitFile != "" {
		omit = phgeno.ReadOmitList(s.OmitFile)
	}
	if s.TrioPairFile != "" {
		opts.OtherParent = phgeno.ReadTrioPairs(s.TrioPairFile, s.NumSamples)
	}
	if s.AncPrefix != "" {
		if s.NumSamples > 1000 {
			log.Println("WARNING: one local ancestry file is opened per sample, which may exceed the open file limit; try ulimit -n if opening fails")
		}
		opts.Ancestry = make([]*ancestry.Reader, s.NumSamples)
		for i := range opts.Ancestry {
			opts.Ancestry[i] = ancestry.Open(s.AncPrefix, i, s.Chrom)
		}
	}
	if s.BlockFile != "" {
		bw, err := blocks.NewWriter(s.BlockFile)
		if err != nil {
			log.Fatalf("ERROR: creating %s: %v", s.BlockFile, err)
		}
		opts.Blocks = bw
	}

	estFile := fileio.EasyOpen(s.EstFile)
	trueFile := fileio.EasyOpen(s.TrueFile)
	est := phgeno.NewReader(estFile, s.EstFile, s.NumSamples, s.SkipSamples, omit)
	truth := phgeno.NewReader(trueFile, s.TrueFile, s.NumSamples, 0, nil)

	stats := phase.Compare(opts, est, truth, os.Stderr)
	stats.Report(os.Stdout, s.NumSamples, s.AncPrefix != "")

	err := estFile.Close()
	exception.PanicOnErr(err)
	err = trueFile.Close()
	exception.PanicOnErr(err)
	for _, r := range opts.Ancestry {
		r.Close()
	}
	if opts.Blocks != nil {
		err = opts.Blocks.Close()
		exception.PanicOnErr(err)
	}
}
