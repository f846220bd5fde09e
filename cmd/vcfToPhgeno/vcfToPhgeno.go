// vcfToPhgeno converts a phased, biallelic VCF into the phgeno
// haplotype matrix that switchErr consumes: one line per marker, one
// character per haplotype. Genotypes that are unphased, missing, or
// not diploid are written as missing for both haplotypes.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
)

func usage() {
	fmt.Print(
		"vcfToPhgeno - Convert a phased biallelic VCF to phgeno format.\n" +
			"Usage:\n" +
			"./vcfToPhgeno [options] input.vcf output.phgeno\n\n")
	flag.PrintDefaults()
}

func main() {
	truth := flag.Bool("truth", false, "Write the truth-set missing character ('9') instead of the estimate one ('?')")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		log.Fatal("ERROR: expected an input VCF and an output phgeno file")
	}
	vcfToPhgeno(flag.Arg(0), flag.Arg(1), *truth)
}

func vcfToPhgeno(inFile, outFile string, truth bool) {
	missing := byte('?')
	if truth {
		missing = '9'
	}
	out := fileio.EasyCreate(outFile)
	data, _ := vcf.GoReadToChan(inFile)

	var buf []byte
	for v := range data {
		if len(v.Alt) != 1 {
			log.Fatalf("ERROR: %s:%d is not biallelic; split or drop multiallelic sites first", v.Chr, v.Pos)
		}
		if buf == nil {
			buf = make([]byte, 2*len(v.Samples))
		} else if len(buf) != 2*len(v.Samples) {
			log.Panicf("%s:%d: sample count changed mid-file", v.Chr, v.Pos)
		}
		for i := range v.Samples {
			buf[2*i], buf[2*i+1] = hapChars(v.Samples[i], missing)
		}
		_, err := fmt.Fprintf(out, "%s\n", buf)
		exception.PanicOnErr(err)
	}

	err := out.Close()
	exception.PanicOnErr(err)
}

// hapChars returns the two haplotype characters for one sample. Only
// a fully phased diploid genotype carries phase information.
func hapChars(sample vcf.Sample, missing byte) (byte, byte) {
	if len(sample.Alleles) != 2 || len(sample.Phase) < 2 || !sample.Phase[1] {
		return missing, missing
	}
	return hapChar(sample.Alleles[0]), hapChar(sample.Alleles[1])
}

func hapChar(allele int16) byte {
	if allele == 0 {
		return '0'
	}
	return '1'
}
