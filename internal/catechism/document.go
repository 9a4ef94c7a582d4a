// Package catechism loads the Catechism of the Catholic Church text and
// resolves paragraph lookups.
package catechism

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a paragraph number is not in the dataset.
var ErrNotFound = errors.New("catechism paragraph not found")

// paragraphStartPattern matches a line that opens a new numbered paragraph.
// A paragraph runs from its leading number until the next such line.
var paragraphStartPattern = regexp.MustCompile(`^\s*(\d+)(?:\s+(.*))?$`)

// Document holds the Catechism indexed by paragraph number. It is built
// once at startup and never mutated afterwards, so concurrent reads from
// gateway handlers need no locking.
type Document struct {
	paragraphs map[int]string
}

// Load reads and parses the Catechism text file at the given path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse builds a Document from plain Catechism text. Each paragraph starts
// at a line whose first token is a positive integer and runs until the next
// numbered line or EOF. When a number occurs more than once, the first
// occurrence wins; text before the first numbered line is ignored.
func Parse(r io.Reader) (*Document, error) {
	paragraphs := make(map[int]string)

	var (
		current int
		body    strings.Builder
	)

	flush := func() {
		if current <= 0 {
			return
		}
		text := strings.TrimSpace(body.String())
		if text == "" {
			return
		}
		if _, exists := paragraphs[current]; !exists {
			paragraphs[current] = text
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if m := paragraphStartPattern.FindStringSubmatch(line); m != nil {
			number, err := strconv.Atoi(m[1])
			if err != nil {
				// Number too large for int, treat the line as body text.
				body.WriteString(line)
				body.WriteByte('\n')

				continue
			}

			flush()
			current = number
			body.Reset()
			body.WriteString(m[2])
			body.WriteByte('\n')

			continue
		}

		if current > 0 {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()

	return &Document{paragraphs: paragraphs}, nil
}

// Paragraph returns the raw text of paragraph n.
func (d *Document) Paragraph(n int) (string, bool) {
	text, ok := d.paragraphs[n]

	return text, ok
}

// Len returns the number of paragraphs in the document.
func (d *Document) Len() int {
	return len(d.paragraphs)
}

// Numbers returns all paragraph numbers in the document, in no particular order.
func (d *Document) Numbers() []int {
	numbers := make([]int, 0, len(d.paragraphs))
	for n := range d.paragraphs {
		numbers = append(numbers, n)
	}

	return numbers
}
