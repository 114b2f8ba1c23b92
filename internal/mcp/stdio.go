package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mieltoinc/yclistdedalus/internal/logger"
)

// maxMessageBytes bounds a single newline-delimited stdio message.
const maxMessageBytes = 16 << 20

// ServeStdio reads newline-delimited JSON-RPC requests from r and writes
// compact responses to w until r is exhausted or ctx is cancelled. Only
// protocol messages are written to w; diagnostics go to the logger.
//
// Reads happen on a separate goroutine so cancellation returns promptly even
// while r is blocked. That goroutine exits once r returns.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	lines, readErr := scanLines(ctx, r)
	encoder := json.NewEncoder(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line []byte
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			// The id cannot be recovered, and JSON-RPC ids must not be null here.
			s.log.Warn("Failed to parse request", logger.Error(err))
			if encErr := encoder.Encode(NewErrorResponse(0, ParseError, "Failed to parse request")); encErr != nil {
				return fmt.Errorf("write response: %w", encErr)
			}
			continue
		}

		resp := s.HandleRequest(ctx, &req)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}

// scanLines streams non-blank lines from r. The error channel receives the
// scanner result before lines is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxMessageBytes)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			select {
			case lines <- bytes.Clone(line):
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("read requests: %w", err)
			return
		}
		errc <- nil
	}()

	return lines, errc
}
