package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"advisor-ai/internal/usecase"
)

// startSendCmd submits the message to the session in a background goroutine.
// Send blocks only for the request setup; streaming happens on the returned
// channel.
func startSendCmd(ctx context.Context, session *usecase.Controller, text string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		events, err := session.Send(ctx, text)
		if err != nil {
			return SendFailedMsg{Err: err, Gen: gen}
		}
		return StreamStartedMsg{Events: events, Gen: gen}
	}
}

// waitEventCmd receives the next session event. The model re-issues this
// command after each event until the channel closes.
func waitEventCmd(events <-chan usecase.Event, gen uint64) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		return StreamEventMsg{Event: e, Open: ok, Gen: gen}
	}
}
