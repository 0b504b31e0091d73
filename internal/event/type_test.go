package event

import "testing"

func TestEveryConcreteTypeBelongsToExactlyOneGroup(t *testing.T) {
	groups := []Group{
		GroupCommitComment,
		GroupIssueComment,
		GroupIssue,
		GroupPullRequest,
		GroupPullRequestReview,
		GroupPullRequestReviewComment,
	}

	for _, typ := range Types() {
		got := typ.Group()
		if got == GroupNone {
			t.Errorf("%s has no group", typ)
			continue
		}
		count := 0
		for _, g := range groups {
			if got == g {
				count++
			}
		}
		if count != 1 {
			t.Errorf("%s maps to %d known groups, want 1", typ, count)
		}
	}
}

func TestUnknownHasNoGroup(t *testing.T) {
	if TypeUnknown.Group() != GroupNone {
		t.Fatalf("UNKNOWN must not belong to any group, got %s", TypeUnknown.Group())
	}
}

func TestTaxonomyIsComplete(t *testing.T) {
	types := Types()

	seen := make(map[Type]bool, len(types))
	for _, typ := range types {
		if typ == TypeUnknown {
			t.Fatal("Types() must not include UNKNOWN")
		}
		if seen[typ] {
			t.Fatalf("duplicate type %s", typ)
		}
		seen[typ] = true
	}

	wantPerGroup := map[Group]int{
		GroupCommitComment:            1,
		GroupIssueComment:             3,
		GroupIssue:                    16,
		GroupPullRequest:              19,
		GroupPullRequestReview:        3,
		GroupPullRequestReviewComment: 3,
	}
	gotPerGroup := make(map[Group]int)
	for _, typ := range types {
		gotPerGroup[typ.Group()]++
	}
	for g, want := range wantPerGroup {
		if gotPerGroup[g] != want {
			t.Errorf("group %s has %d members, want %d", g, gotPerGroup[g], want)
		}
	}
}
