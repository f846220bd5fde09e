// Package blocks writes the per-sample switch-block table as an Arrow
// IPC file: one row per switch error plus one final row per sample,
// the machine-readable form of the verbose stderr block report.
package blocks

import (
	"os"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/ipc"
	"github.com/apache/arrow/go/v14/arrow/memory"
)

// FieldNames is the column order of the block table.
var FieldNames = []string{"sample", "switchIndex", "locus", "blockLength"}

const defaultChunkSize = 1 << 14

// A Writer buffers block rows into Arrow record batches and flushes
// them to an IPC file writer one chunk at a time.
type Writer struct {
	file     *os.File
	writer   *ipc.FileWriter
	schema   *arrow.Schema
	builders []*array.Int64Builder
	rows     int
	chunk    int
}

func NewWriter(filePath string) (*Writer, error) {
	fields := make([]arrow.Field, len(FieldNames))
	for i, name := range FieldNames {
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Int64}
	}
	schema := arrow.NewSchema(fields, nil)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	writer, err := ipc.NewFileWriter(file, ipc.WithSchema(schema))
	if err != nil {
		file.Close()
		return nil, err
	}

	pool := memory.NewGoAllocator()
	builders := make([]*array.Int64Builder, len(fields))
	for i := range builders {
		builders[i] = array.NewInt64Builder(pool)
	}

	return &Writer{
		file:     file,
		writer:   writer,
		schema:   schema,
		builders: builders,
		chunk:    defaultChunkSize,
	}, nil
}

// Write appends one block row.
func (w *Writer) Write(sample, switchIndex, locus, blockLength int) error {
	row := [...]int64{int64(sample), int64(switchIndex), int64(locus), int64(blockLength)}
	for i, val := range row {
		w.builders[i].Append(val)
	}
	w.rows++
	if w.rows == w.chunk {
		return w.flush()
	}
	return nil
}

func (w *Writer) flush() error {
	cols := make([]arrow.Array, len(w.builders))
	for i, b := range w.builders {
		// NewArray hands off the buffered values and resets the builder
		cols[i] = b.NewArray()
	}
	record := array.NewRecord(w.schema, cols, int64(w.rows))
	defer record.Release()
	w.rows = 0
	return w.writer.Write(record)
}

// Close flushes any buffered rows and closes the underlying file.
func (w *Writer) Close() error {
	if w.rows > 0 {
		if err := w.flush(); err != nil {
			return err
		}
	}
	if err := w.writer.Close(); err != nil {
		return err
	}
	return w.file.Close()
}
