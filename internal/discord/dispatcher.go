package discord

import (
	"context"
	"log/slog"

	"github.com/hookline/hookline/models"
)

// Sender executes a webhook call and returns per-recipient responses.
// Implemented by Client; substituted in tests.
type Sender interface {
	Execute(ctx context.Context, endpoint string, msg models.Message) ([]Response, error)
}

// acceptedStatus is the set of delivery status codes treated as success.
var acceptedStatus = map[int]bool{200: true, 204: true}

// Dispatcher sends rendered messages and validates the delivery outcome.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher creates a Dispatcher on top of a Sender.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Dispatch delivers msg to endpoint. A transport failure is returned. A
// rejected response is logged with its status, body, and message fields, and
// aborts the check loop: responses after the first failure are left
// unexamined. Full success logs one info line with the title.
func (d *Dispatcher) Dispatch(ctx context.Context, endpoint string, msg models.Message) error {
	responses, err := d.sender.Execute(ctx, endpoint, msg)
	if err != nil {
		return err
	}

	for _, resp := range responses {
		if !acceptedStatus[resp.StatusCode] {
			slog.Error("executing webhook failed",
				"code", resp.StatusCode,
				"text", resp.Body,
				"author", msg.AuthorName,
				"title", msg.Title,
				"description", msg.Description)
			return nil
		}
	}

	slog.Info("event sent to discord successfully", "title", msg.Title)
	return nil
}
