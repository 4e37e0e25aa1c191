package compose

import (
	"context"
	"io"
)

type fakeRunner struct {
	dir    string
	name   string
	args   []string
	output string
	code   int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args []string, sink io.Writer) (int, error) {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	if f.err != nil {
		return -1, f.err
	}
	if f.output != "" {
		if _, err := io.WriteString(sink, f.output); err != nil {
			return -1, err
		}
	}
	return f.code, nil
}
