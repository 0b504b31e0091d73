// Package relay wires the per-event pipeline: classify, filter, render,
// dispatch.
package relay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hookline/hookline/internal/discord"
	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/policy"
	"github.com/hookline/hookline/internal/render"
)

// Handler processes one event end to end. It holds no mutable state, so one
// Handler can serve concurrent events if embedded in a service.
type Handler struct {
	filter      *policy.Filter
	dispatcher  *discord.Dispatcher
	staffURL    string
	externalURL string
}

// NewHandler builds a Handler from its collaborators and the two channel
// endpoints.
func NewHandler(filter *policy.Filter, dispatcher *discord.Dispatcher, staffURL, externalURL string) *Handler {
	return &Handler{
		filter:      filter,
		dispatcher:  dispatcher,
		staffURL:    staffURL,
		externalURL: externalURL,
	}
}

// Handle decodes and processes one raw event document. Unknown events and
// policy drops are logged and succeed; decode failures and authorization
// lookup failures are returned for the caller to log.
func (h *Handler) Handle(ctx context.Context, raw []byte) error {
	p, err := event.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding event payload: %w", err)
	}

	t, shape := event.Classify(p)
	if t == event.TypeUnknown {
		if shape != event.ShapeNone {
			slog.Warn("UNKNOWN event received: unrecognized action for matched shape",
				"shape", shape, "action", p.Action, "payload", string(raw))
		} else {
			slog.Warn("UNKNOWN event received", "payload", string(raw))
		}
	}

	decision, err := h.filter.Decide(ctx, p, t)
	if err != nil {
		return err
	}

	switch decision.Route {
	case policy.RouteStaff:
		return h.dispatcher.Dispatch(ctx, h.staffURL, render.Render(t, p))
	case policy.RouteExternal:
		return h.dispatcher.Dispatch(ctx, h.externalURL, render.Render(t, p))
	default:
		slog.Info("event skipped",
			"event", t.String(),
			"reason", decision.Reason,
			"actor", p.Sender.Login,
			"repo", p.Repository.FullName)
		return nil
	}
}
