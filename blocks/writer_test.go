package blocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/ipc"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.feather")

	writer, err := NewWriter(path)
	require.NoError(t, err)

	rows := [][4]int{
		{0, 0, 10, 10},
		{0, 1, 25, 15},
		{1, 0, 99, 99},
	}
	for _, row := range rows {
		require.NoError(t, writer.Write(row[0], row[1], row[2], row[3]))
	}
	require.NoError(t, writer.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader, err := ipc.NewFileReader(file)
	require.NoError(t, err)
	defer reader.Close()

	var got [][4]int
	for i := 0; i < reader.NumRecords(); i++ {
		record, err := reader.Record(i)
		require.NoError(t, err)
		require.Equal(t, int64(len(FieldNames)), record.NumCols())

		cols := make([]*array.Int64, len(FieldNames))
		for c, col := range record.Columns() {
			arr, ok := col.(*array.Int64)
			require.True(t, ok, "column %d is not Int64", c)
			cols[c] = arr
		}
		for r := 0; r < int(record.NumRows()); r++ {
			var row [4]int
			for c := range cols {
				row[c] = int(cols[c].Value(r))
			}
			got = append(got, row)
		}
	}
	require.Equal(t, rows, got)
}

func TestSchemaFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.feather")

	writer, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, writer.Write(0, 0, 0, 0))
	require.NoError(t, writer.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader, err := ipc.NewFileReader(file)
	require.NoError(t, err)
	defer reader.Close()

	schema := reader.Schema()
	require.Equal(t, len(FieldNames), len(schema.Fields()))
	for i, name := range FieldNames {
		require.Equal(t, name, schema.Field(i).Name)
	}
}
