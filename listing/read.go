package listing

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/mipsasm/isa"
)

// Read parses the words of a text listing in any of the text styles.
// Comments after '//' or '#' and blank lines are ignored.
func Read(r io.Reader) (codes []isa.Code, err error) {
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++

		line, _, _ := strings.Cut(scanner.Text(), "//")
		line, _, _ = strings.Cut(line, "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		word := fields[0]
		if len(fields) != 1 || len(word) != 8 {
			err = &ErrWordInvalid{LineNo: lineno, Text: scanner.Text()}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(word, 16, 32)
		if err != nil {
			err = &ErrWordInvalid{LineNo: lineno, Text: scanner.Text()}
			return
		}

		codes = append(codes, isa.Code(value))
	}

	err = scanner.Err()
	return
}
