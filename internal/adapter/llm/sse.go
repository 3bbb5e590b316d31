package llm

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"advisor-ai/internal/domain"
)

// maxLineSize bounds a single SSE line. Delta frames are small; this is
// headroom for oversized error payloads.
const maxLineSize = 1024 * 1024

var (
	dataPrefix   = []byte("data: ")
	doneSentinel = []byte("[DONE]")
)

// streamFrame is the decoded meaning of one data payload: either a text
// increment or a fatal stream error.
type streamFrame struct {
	text string
	err  error
}

// decodeSSE reads SSE-formatted lines from body and emits one StreamDelta per
// text frame, carrying both the increment and the accumulated text so far.
// The returned channel is closed when the stream ends, a fatal frame arrives,
// or ctx is cancelled.
//
// Per the upstream protocol the "[DONE]" sentinel is a no-op marker, not a
// stop signal; reading continues until transport end-of-data. Lines that are
// not data payloads, or whose payload fails to parse, are skipped.
func decodeSSE(ctx context.Context, body io.ReadCloser, parseFrame func(data []byte) (*streamFrame, error)) <-chan domain.StreamDelta {
	ch := make(chan domain.StreamDelta, 16)
	go func() {
		defer close(ch)
		defer body.Close()

		var full strings.Builder
		send := func(d domain.StreamDelta) bool {
			select {
			case ch <- d:
				return true
			case <-ctx.Done():
				return false
			}
		}

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			line := scanner.Bytes()

			// Skip empty lines and comments.
			if len(line) == 0 || line[0] == ':' {
				continue
			}
			if !bytes.HasPrefix(line, dataPrefix) {
				continue
			}
			data := bytes.TrimSpace(bytes.TrimPrefix(line, dataPrefix))

			if bytes.Equal(data, doneSentinel) {
				continue
			}

			frame, err := parseFrame(data)
			if err != nil || frame == nil {
				continue
			}
			if frame.err != nil {
				send(domain.StreamDelta{Text: full.String(), Err: frame.err})
				return
			}
			if frame.text == "" {
				continue
			}

			full.WriteString(frame.text)
			if !send(domain.StreamDelta{Delta: frame.text, Text: full.String()}) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			send(domain.StreamDelta{Text: full.String(), Err: fmt.Errorf("%w: %v", domain.ErrStreamError, err)})
			return
		}
		send(domain.StreamDelta{Text: full.String(), Done: true})
	}()
	return ch
}
