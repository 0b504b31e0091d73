package event

// Shape is the structural form matched during classification, independent of
// the action value. It lets callers tell "known shape, unknown action" apart
// from a payload that matched nothing at all.
type Shape string

const (
	ShapeNone            Shape = "none"
	ShapeIssueComment    Shape = "issue_comment"
	ShapeIssue           Shape = "issue"
	ShapePRReviewComment Shape = "pr_review_comment"
	ShapePR              Shape = "pull_request"
	ShapePRReview        Shape = "pr_review"
	ShapeCommitComment   Shape = "commit_comment"
)

// shapeRule pairs a structural predicate with the action table it selects.
// Rules are evaluated top-down; the first matching predicate wins and no later
// rule is consulted, even if its action table would have matched.
type shapeRule struct {
	shape   Shape
	match   func(*Payload) bool
	actions map[string]Type
}

var shapeRules = []shapeRule{
	{
		shape: ShapeIssueComment,
		match: func(p *Payload) bool { return p.Issue != nil && p.Comment != nil },
		actions: map[string]Type{
			"created": TypeIssueCommentCreated,
			"edited":  TypeIssueCommentEdited,
			"deleted": TypeIssueCommentDeleted,
		},
	},
	{
		shape: ShapeIssue,
		match: func(p *Payload) bool { return p.Issue != nil },
		actions: map[string]Type{
			"opened":       TypeIssueOpened,
			"edited":       TypeIssueEdited,
			"deleted":      TypeIssueDeleted,
			"pinned":       TypeIssuePinned,
			"unpinned":     TypeIssueUnpinned,
			"closed":       TypeIssueClosed,
			"reopened":     TypeIssueReopened,
			"assigned":     TypeIssueAssigned,
			"unassigned":   TypeIssueUnassigned,
			"labeled":      TypeIssueLabeled,
			"unlabeled":    TypeIssueUnlabeled,
			"locked":       TypeIssueLocked,
			"unlocked":     TypeIssueUnlocked,
			"transferred":  TypeIssueTransferred,
			"milestoned":   TypeIssueMilestoned,
			"demilestoned": TypeIssueDemilestoned,
		},
	},
	{
		shape: ShapePRReviewComment,
		match: func(p *Payload) bool { return p.PullRequest != nil && p.Comment != nil },
		actions: map[string]Type{
			"created": TypePRReviewCommentCreated,
			"edited":  TypePRReviewCommentEdited,
			"deleted": TypePRReviewCommentDeleted,
		},
	},
	{
		shape: ShapePR,
		match: func(p *Payload) bool { return p.PullRequest != nil && p.Number != nil },
		actions: map[string]Type{
			"opened":                 TypePROpened,
			"edited":                 TypePREdited,
			"closed":                 TypePRClosed,
			"reopened":               TypePRReopened,
			"assigned":               TypePRAssigned,
			"unassigned":             TypePRUnassigned,
			"review_requested":       TypePRReviewRequested,
			"review_request_removed": TypePRReviewRequestRemoved,
			"ready_for_review":       TypePRReadyForReview,
			"converted_to_draft":     TypePRConvertedToDraft,
			"labeled":                TypePRLabeled,
			"unlabeled":              TypePRUnlabeled,
			"synchronize":            TypePRSynchronize,
			"auto_merge_enabled":     TypePRAutoMergeEnabled,
			"auto_merge_disabled":    TypePRAutoMergeDisabled,
			"locked":                 TypePRLocked,
			"unlocked":               TypePRUnlocked,
			"milestoned":             TypePRMilestoned,
			"demilestoned":           TypePRDemilestoned,
		},
	},
	{
		shape: ShapePRReview,
		match: func(p *Payload) bool { return p.PullRequest != nil && p.Review != nil },
		actions: map[string]Type{
			"submitted": TypePRReviewSubmitted,
			"edited":    TypePRReviewEdited,
			"dismissed": TypePRReviewDismissed,
		},
	},
	{
		shape: ShapeCommitComment,
		match: func(p *Payload) bool { return p.Comment != nil && p.Comment.CommitID != "" },
		actions: map[string]Type{
			"created": TypeCommitComment,
		},
	},
}

// Classify maps a payload to its event type. It is pure and total: an action
// missing from the matched shape's table yields (TypeUnknown, shape), and a
// payload matching no shape yields (TypeUnknown, ShapeNone). It never fails.
func Classify(p *Payload) (Type, Shape) {
	for _, rule := range shapeRules {
		if !rule.match(p) {
			continue
		}
		if t, ok := rule.actions[p.Action]; ok {
			return t, rule.shape
		}
		return TypeUnknown, rule.shape
	}
	return TypeUnknown, ShapeNone
}
