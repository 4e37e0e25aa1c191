// Where: internal/compose/client.go
// What: The docker-compose binding entry point.
// Why: One place validates options, resolves the executable, and runs it.
package compose

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// Client invokes docker-compose. The zero value is not usable; construct
// with NewClient or fill both fields for tests.
type Client struct {
	Runner  Runner
	Locator Locator
}

// NewClient returns a Client wired to the real executable.
func NewClient() *Client {
	return &Client{Runner: ExecRunner{}, Locator: DefaultLocator}
}

// Run performs a single synchronous invocation. A non-zero exit code is
// reported through the Result, not the error; the error is reserved for
// startup failures (unknown operation, unresolvable or unrunnable
// executable).
func (c *Client) Run(ctx context.Context, op Operation, opts Options) (Result, error) {
	if !op.Valid() {
		return Result{}, fmt.Errorf("unsupported operation %q", op)
	}

	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	locator := c.Locator
	if locator == nil {
		locator = DefaultLocator
	}

	name, err := locator()
	if err != nil {
		return Result{}, &StartError{Name: string(op), Err: err}
	}

	var buf bytes.Buffer
	sink := io.Writer(&buf)
	if opts.Into != nil {
		sink = io.MultiWriter(opts.Into, &buf)
	}

	// The compose file's directory becomes the working directory; only
	// the base name travels on the command line.
	dir := ""
	if opts.ComposePath != "" {
		dir = filepath.Dir(opts.ComposePath)
	}

	code, err := runner.Run(ctx, dir, name, BuildArgs(op, opts), sink)
	if err != nil {
		return Result{Output: buf.String()}, err
	}
	return Result{Output: buf.String(), ExitCode: code}, nil
}

// Up creates and starts services.
func (c *Client) Up(ctx context.Context, opts Options) (Result, error) {
	return c.Run(ctx, OpUp, opts)
}

// Down stops and removes services. Service names in opts are ignored.
func (c *Client) Down(ctx context.Context, opts Options) (Result, error) {
	return c.Run(ctx, OpDown, opts)
}

// Restart restarts services.
func (c *Client) Restart(ctx context.Context, opts Options) (Result, error) {
	return c.Run(ctx, OpRestart, opts)
}

// Stop stops services without removing them.
func (c *Client) Stop(ctx context.Context, opts Options) (Result, error) {
	return c.Run(ctx, OpStop, opts)
}

// Start starts previously created services.
func (c *Client) Start(ctx context.Context, opts Options) (Result, error) {
	return c.Run(ctx, OpStart, opts)
}
