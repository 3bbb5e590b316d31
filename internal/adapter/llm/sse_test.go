package llm

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"advisor-ai/internal/domain"
)

func collect(t *testing.T, ch <-chan domain.StreamDelta) []domain.StreamDelta {
	t.Helper()
	var out []domain.StreamDelta
	for d := range ch {
		out = append(out, d)
	}
	return out
}

func sseBody(lines ...string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestDecodeSSEAccumulates(t *testing.T) {
	body := sseBody(
		`event: content_block_delta`,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"Hello"}}`,
		``,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":", world"}}`,
		`data: {"type":"message_stop"}`,
	)

	deltas := collect(t, decodeSSE(context.Background(), body, parseStreamFrame))

	if len(deltas) != 3 {
		t.Fatalf("deltas = %d, want 3: %+v", len(deltas), deltas)
	}
	if deltas[0].Delta != "Hello" || deltas[0].Text != "Hello" {
		t.Errorf("first delta = %+v", deltas[0])
	}
	if deltas[1].Delta != ", world" || deltas[1].Text != "Hello, world" {
		t.Errorf("second delta = %+v", deltas[1])
	}
	final := deltas[2]
	if !final.Done || final.Err != nil || final.Text != "Hello, world" {
		t.Errorf("final delta = %+v", final)
	}
}

func TestDecodeSSEDoneSentinelIsNoOp(t *testing.T) {
	// Text after the sentinel must still be decoded; only transport
	// end-of-data terminates the stream.
	body := sseBody(
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"before"}}`,
		`data: [DONE]`,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":" after"}}`,
	)

	deltas := collect(t, decodeSSE(context.Background(), body, parseStreamFrame))

	final := deltas[len(deltas)-1]
	if !final.Done || final.Text != "before after" {
		t.Errorf("final = %+v, want accumulated text across the sentinel", final)
	}
}

func TestDecodeSSEErrorFrameIsFatal(t *testing.T) {
	body := sseBody(
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"partial"}}`,
		`data: {"type":"error","error":{"message":"overloaded"}}`,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"never seen"}}`,
	)

	deltas := collect(t, decodeSSE(context.Background(), body, parseStreamFrame))

	final := deltas[len(deltas)-1]
	if final.Err == nil {
		t.Fatalf("final = %+v, want error delta", final)
	}
	if !errors.Is(final.Err, domain.ErrStreamError) {
		t.Errorf("err = %v, want ErrStreamError", final.Err)
	}
	if !strings.Contains(final.Err.Error(), "overloaded") {
		t.Errorf("err = %v, want upstream message preserved", final.Err)
	}
	// Accumulated text before the failure rides along for display.
	if final.Text != "partial" {
		t.Errorf("final.Text = %q, want text accumulated before the error", final.Text)
	}
	if len(deltas) != 2 {
		t.Errorf("frames after a fatal error must not be decoded: %+v", deltas)
	}
}

func TestDecodeSSESkipsGarbage(t *testing.T) {
	body := sseBody(
		`: keep-alive comment`,
		`event: ping`,
		`data: this is not json`,
		`data: {"type":"unknown_event","payload":1}`,
		`data: {"type":"content_block_delta","delta":{"type":"input_json_delta","partial_json":"{"}}`,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"ok"}}`,
	)

	deltas := collect(t, decodeSSE(context.Background(), body, parseStreamFrame))

	if len(deltas) != 2 {
		t.Fatalf("deltas = %+v, want one text delta plus final", deltas)
	}
	if deltas[0].Text != "ok" {
		t.Errorf("text = %q", deltas[0].Text)
	}
}

func TestDecodeSSEContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body := sseBody(
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"x"}}`,
	)
	ch := decodeSSE(ctx, body, parseStreamFrame)

	// Channel must close without hanging; buffered sends may deliver at most
	// the already-queued deltas.
	for range ch {
	}
}

// fragmentedReader yields the underlying bytes in two reads split at off.
type fragmentedReader struct {
	data []byte
	off  int
	pos  int
}

func (r *fragmentedReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	end := r.off
	if r.pos >= r.off {
		end = len(r.data)
	}
	n := copy(p, r.data[r.pos:end])
	r.pos += n
	return n, nil
}

func (r *fragmentedReader) Close() error { return nil }

func TestDecodeSSESplitAtEveryByte(t *testing.T) {
	// Multi-byte UTF-8 text ensures splits land mid-codepoint.
	raw := strings.Join([]string{
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"héllo "}}`,
		`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"wörld — 終"}}`,
		`data: {"type":"message_stop"}`,
		``,
	}, "\n")

	whole := collect(t, decodeSSE(context.Background(), io.NopCloser(strings.NewReader(raw)), parseStreamFrame))
	wantText := whole[len(whole)-1].Text
	if wantText != "héllo wörld — 終" {
		t.Fatalf("baseline text = %q", wantText)
	}

	for off := 0; off <= len(raw); off++ {
		ch := decodeSSE(context.Background(), &fragmentedReader{data: []byte(raw), off: off}, parseStreamFrame)
		deltas := collect(t, ch)
		final := deltas[len(deltas)-1]
		if final.Err != nil || !final.Done {
			t.Fatalf("split at %d: final = %+v", off, final)
		}
		if final.Text != wantText {
			t.Fatalf("split at %d: text = %q, want %q", off, final.Text, wantText)
		}
	}
}
