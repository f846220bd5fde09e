package phase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTripleHet(t *testing.T) {
	tests := []struct {
		name          string
		parent, other string
		want          bool
	}{
		{"both het, transmitted alleles differ", "01", "10", true},
		{"both het, transmitted alleles agree", "01", "01", false},
		{"parent homozygous", "00", "01", false},
		{"other parent homozygous", "01", "11", false},
		{"both homozygous", "00", "11", false},
	}
	for _, test := range tests {
		require.Equal(t, test.want, TripleHet(pair(test.parent), pair(test.other)), test.name)
	}
}
