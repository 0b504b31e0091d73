package policy

import (
	"context"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/forge"
)

// Route selects the outbound channel for an event.
type Route string

const (
	RouteDrop     Route = "drop"
	RouteStaff    Route = "staff"
	RouteExternal Route = "external"
)

// Decision is the outcome of filtering one event. Reason is set only for
// RouteDrop.
type Decision struct {
	Route  Route
	Reason string
}

// Filter applies blacklists, the author-permission lookup, and the audience
// whitelists, in that order. It holds no mutable state; a single Filter is
// safe for concurrent use.
type Filter struct {
	policy   Policy
	checker  forge.PermissionChecker
	staff    map[event.Type]bool
	external map[event.Type]bool
	actors   map[string]bool
	repos    map[string]bool
}

// NewFilter builds a Filter from an explicit policy and a permission checker.
func NewFilter(p Policy, checker forge.PermissionChecker) *Filter {
	return &Filter{
		policy:   p,
		checker:  checker,
		staff:    typeSet(p.StaffEvents),
		external: typeSet(p.ExternalEvents),
		actors:   stringSet(p.ActorBlacklist),
		repos:    stringSet(p.RepoBlacklist),
	}
}

// Decide returns the routing decision for a classified event. Checks
// short-circuit: a blacklisted actor or repository drops the event before any
// permission lookup. A permission lookup failure is returned as-is and is
// never interpreted as either audience.
func (f *Filter) Decide(ctx context.Context, p *event.Payload, t event.Type) (Decision, error) {
	if f.actors[p.Sender.Login] {
		return Decision{Route: RouteDrop, Reason: "actor blacklisted"}, nil
	}
	if f.repos[p.Repository.FullName] {
		return Decision{Route: RouteDrop, Reason: "repository blacklisted"}, nil
	}

	isStaff, err := f.checker.IsStaff(ctx, p.Repository.FullName, p.Sender.Login)
	if err != nil {
		return Decision{}, err
	}

	if isStaff && f.staff[t] {
		return Decision{Route: RouteStaff}, nil
	}
	if !isStaff && f.external[t] {
		return Decision{Route: RouteExternal}, nil
	}
	return Decision{Route: RouteDrop, Reason: "event type not whitelisted for this audience"}, nil
}

func typeSet(types []event.Type) map[event.Type]bool {
	set := make(map[event.Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
