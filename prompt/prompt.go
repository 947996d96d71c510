// Package prompt asks for integers on a terminal until a valid one is given.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field describes one integer the user is asked for. Min and Max are
// inclusive. Default is only used when Optional is set.
type Field struct {
	Name     string
	Min      int
	Max      int
	Default  int
	Optional bool
}

// Check returns an error when v is outside of the field's range.
func (f Field) Check(v int) error {
	if v < f.Min || v > f.Max {
		return errors.Errorf("%s must be between %d and %d, got %d", f.Name, f.Min, f.Max, v)
	}
	return nil
}

// Text is the prompt shown before each attempt.
func (f Field) Text() string {
	text := fmt.Sprintf("\nPlease provide the desired %s (between %d and %d): ", f.Name, f.Min, f.Max)
	if f.Optional {
		text = fmt.Sprintf("[Optional]\nDefault value is %d", f.Default) + text
	}
	return text
}

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	r *bufio.Reader
	w io.Writer

	// Echo controls whether the prompt text is written before each read.
	// Messages about the answer are always written.
	Echo bool
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w, Echo: true}
}

// Int asks for f until the answer is an integer within range, or an empty
// line for optional fields. It only fails when the input runs out.
func (p *Prompter) Int(f Field) (int, error) {
	for {
		if p.Echo {
			fmt.Fprint(p.w, f.Text())
		}

		line, err := p.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, errors.Wrapf(err, "reading %s", f.Name)
		}
		answer := strings.TrimSpace(line)

		if f.Optional && answer == "" {
			fmt.Fprintf(p.w, "\nUsing the default value %d\n\n", f.Default)
			return f.Default, nil
		}

		v, convErr := strconv.Atoi(answer)
		if convErr != nil {
			fmt.Fprintln(p.w, "Please enter a valid integer.")
		} else if f.Check(v) != nil {
			fmt.Fprintf(p.w, "The provided value should be within (inclusive) range of %d and %d\n", f.Min, f.Max)
		} else {
			fmt.Fprintf(p.w, "\nThe provided value of %d will be used.\n\n", v)
			return v, nil
		}

		if err == io.EOF {
			return 0, errors.Wrapf(err, "reading %s", f.Name)
		}
	}
}
