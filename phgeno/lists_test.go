package phgeno

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)
	return path
}

func TestReadOmitList(t *testing.T) {
	path := writeTempFile(t, "omit.txt", "0 3\n7\n")
	omit := ReadOmitList(path)
	require.Equal(t, map[int]bool{0: true, 3: true, 7: true}, omit)
}

func TestReadOmitListEmpty(t *testing.T) {
	path := writeTempFile(t, "omit.txt", "")
	omit := ReadOmitList(path)
	require.Empty(t, omit)
}

func TestReadTrioPairs(t *testing.T) {
	path := writeTempFile(t, "pairs.txt", "0 2\n1 3\n")
	otherParent := ReadTrioPairs(path, 4)
	require.True(t, slices.Equal([]int{2, 3, 0, 1}, otherParent))
}

func TestReadTrioPairsSymmetric(t *testing.T) {
	path := writeTempFile(t, "pairs.txt", "3 0\n2 1\n")
	otherParent := ReadTrioPairs(path, 4)
	for id, other := range otherParent {
		require.Equal(t, id, otherParent[other])
	}
}
