package words

import (
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/I-Am-Dench/binwords/seq"
	"github.com/pkg/errors"
)

const (
	WordWidth = 2
	RowLength = 8
	RowFill   = "0x0"
	Separator = ", "
)

// Rows batches tokens into rows of [RowLength], padding the last row
// with [RowFill].
func Rows(tokens iter.Seq[string]) iter.Seq[[]string] {
	return seq.Groupwise(tokens, RowLength, RowFill)
}

func FormatRow(row []string) string {
	line := strings.Builder{}
	for _, token := range row {
		line.WriteString(token)
		line.WriteString(Separator)
	}
	return line.String()
}

// Fprint writes data to w as rows of 2-byte big-endian words, one row
// per line.
func Fprint(w io.Writer, data []byte) error {
	tokens, err := PrettyBytes(data, WordWidth)
	if err != nil {
		return err
	}

	for row := range Rows(slices.Values(tokens)) {
		if _, err := io.WriteString(w, FormatRow(row)+"\n"); err != nil {
			return errors.Wrap(err, "words: print")
		}
	}

	return nil
}

func ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "words: read %s", name)
	}
	return data, nil
}

// PrintFile reads the named file in full and prints it with [Fprint].
// Nothing is written if the file cannot be read.
func PrintFile(w io.Writer, name string) error {
	data, err := ReadFile(name)
	if err != nil {
		return err
	}

	return Fprint(w, data)
}
