package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/forge"
)

// fakeChecker records whether it was consulted and returns canned results.
type fakeChecker struct {
	staff  bool
	err    error
	called int
}

func (f *fakeChecker) Name() string { return "fake" }

func (f *fakeChecker) IsStaff(ctx context.Context, repo, login string) (bool, error) {
	f.called++
	return f.staff, f.err
}

func payloadFor(login, repo string) *event.Payload {
	return &event.Payload{
		Sender:     event.Sender{Login: login},
		Repository: event.Repository{FullName: repo},
	}
}

func TestDecideDropsBlacklistedActorWithoutLookup(t *testing.T) {
	checker := &fakeChecker{staff: true}
	f := NewFilter(Default(), checker)

	d, err := f.Decide(context.Background(), payloadFor("github-actions[bot]", "acme/widgets"), event.TypePROpened)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Route != RouteDrop {
		t.Fatalf("expected drop, got %s", d.Route)
	}
	if d.Reason != "actor blacklisted" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
	if checker.called != 0 {
		t.Fatal("permission lookup must not run for a blacklisted actor")
	}
}

func TestDecideDropsBlacklistedRepoWithoutLookup(t *testing.T) {
	checker := &fakeChecker{}
	f := NewFilter(Default(), checker)

	d, err := f.Decide(context.Background(), payloadFor("alice", "berty/bugs"), event.TypePROpened)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Route != RouteDrop || d.Reason != "repository blacklisted" {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if checker.called != 0 {
		t.Fatal("permission lookup must not run for a blacklisted repository")
	}
}

func TestDecideStaffBranchTakesPriority(t *testing.T) {
	// PR_OPENED is in both whitelists; a staff actor must route to staff.
	f := NewFilter(Default(), &fakeChecker{staff: true})

	d, err := f.Decide(context.Background(), payloadFor("alice", "acme/widgets"), event.TypePROpened)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Route != RouteStaff {
		t.Fatalf("expected staff route, got %s", d.Route)
	}
}

func TestDecideExternalRoute(t *testing.T) {
	f := NewFilter(Default(), &fakeChecker{staff: false})

	d, err := f.Decide(context.Background(), payloadFor("bob", "acme/widgets"), event.TypePRReviewCommentCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Route != RouteExternal {
		t.Fatalf("expected external route, got %s", d.Route)
	}
}

func TestDecideDropsNonWhitelistedType(t *testing.T) {
	// PR_REVIEW_COMMENT_CREATED is external-only; staff actors drop it.
	f := NewFilter(Default(), &fakeChecker{staff: true})

	d, err := f.Decide(context.Background(), payloadFor("alice", "acme/widgets"), event.TypePRReviewCommentCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Route != RouteDrop {
		t.Fatalf("expected drop, got %s", d.Route)
	}
	if d.Reason != "event type not whitelisted for this audience" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

func TestDecideUnknownNeverRoutes(t *testing.T) {
	for _, staff := range []bool{true, false} {
		f := NewFilter(Default(), &fakeChecker{staff: staff})
		d, err := f.Decide(context.Background(), payloadFor("alice", "acme/widgets"), event.TypeUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Route != RouteDrop {
			t.Fatalf("UNKNOWN must always drop, got %s (staff=%v)", d.Route, staff)
		}
	}
}

func TestDecidePropagatesLookupFailure(t *testing.T) {
	lookupErr := &forge.StatusError{StatusCode: 404, Repo: "acme/widgets", User: "alice"}
	f := NewFilter(Default(), &fakeChecker{err: lookupErr})

	_, err := f.Decide(context.Background(), payloadFor("alice", "acme/widgets"), event.TypePROpened)
	if err == nil {
		t.Fatal("expected lookup failure to propagate")
	}
	var statusErr *forge.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *forge.StatusError, got %T", err)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	f := NewFilter(Default(), &fakeChecker{staff: true})
	p := payloadFor("alice", "acme/widgets")

	first, err := f.Decide(context.Background(), p, event.TypeIssueClosed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := f.Decide(context.Background(), p, event.TypeIssueClosed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("decision not deterministic: %+v vs %+v", first, got)
		}
	}
}
