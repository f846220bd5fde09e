package phase

// TripleHet reports whether a site is pedigree-ambiguous for a pair
// of trio parents: both parents heterozygous in the truth set with
// differing transmitted alleles. The first haplotype of each parent
// is the one transmitted to the child, so differing first alleles
// imply the child is heterozygous too, and which allele came from
// which parent cannot be determined from genotypes alone.
func TripleHet(parent, otherParent [2]byte) bool {
	return parent[0] != parent[1] &&
		otherParent[0] != otherParent[1] &&
		parent[0] != otherParent[0]
}
