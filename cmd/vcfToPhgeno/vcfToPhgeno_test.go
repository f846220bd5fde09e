package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/vcf"
)

func TestHapChars(t *testing.T) {
	tests := []struct {
		name   string
		sample vcf.Sample
		a, b   byte
	}{
		{
			name:   "phased het",
			sample: vcf.Sample{Alleles: []int16{0, 1}, Phase: []bool{false, true}},
			a:      '0', b: '1',
		},
		{
			name:   "phased het, alt first",
			sample: vcf.Sample{Alleles: []int16{1, 0}, Phase: []bool{false, true}},
			a:      '1', b: '0',
		},
		{
			name:   "phased homozygous",
			sample: vcf.Sample{Alleles: []int16{1, 1}, Phase: []bool{false, true}},
			a:      '1', b: '1',
		},
		{
			name:   "unphased genotype",
			sample: vcf.Sample{Alleles: []int16{0, 1}, Phase: []bool{false, false}},
			a:      '?', b: '?',
		},
		{
			name:   "missing genotype",
			sample: vcf.Sample{},
			a:      '?', b: '?',
		},
	}
	for _, test := range tests {
		a, b := hapChars(test.sample, '?')
		require.Equal(t, test.a, a, test.name)
		require.Equal(t, test.b, b, test.name)
	}
}

func TestHapCharsTruthMissing(t *testing.T) {
	a, b := hapChars(vcf.Sample{}, '9')
	require.Equal(t, byte('9'), a)
	require.Equal(t, byte('9'), b)
}
