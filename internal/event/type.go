package event

// Type is one concrete event kind. The taxonomy is closed: every payload maps
// to exactly one Type, with TypeUnknown as the catch-all.
type Type string

const (
	TypeUnknown Type = "UNKNOWN"

	TypeCommitComment Type = "COMMIT_COMMENT"

	TypeIssueCommentCreated Type = "ISSUE_COMMENT_CREATED"
	TypeIssueCommentEdited  Type = "ISSUE_COMMENT_EDITED"
	TypeIssueCommentDeleted Type = "ISSUE_COMMENT_DELETED"

	TypeIssueOpened       Type = "ISSUE_OPENED"
	TypeIssueEdited       Type = "ISSUE_EDITED"
	TypeIssueDeleted      Type = "ISSUE_DELETED"
	TypeIssuePinned       Type = "ISSUE_PINNED"
	TypeIssueUnpinned     Type = "ISSUE_UNPINNED"
	TypeIssueClosed       Type = "ISSUE_CLOSED"
	TypeIssueReopened     Type = "ISSUE_REOPENED"
	TypeIssueAssigned     Type = "ISSUE_ASSIGNED"
	TypeIssueUnassigned   Type = "ISSUE_UNASSIGNED"
	TypeIssueLabeled      Type = "ISSUE_LABELED"
	TypeIssueUnlabeled    Type = "ISSUE_UNLABELED"
	TypeIssueLocked       Type = "ISSUE_LOCKED"
	TypeIssueUnlocked     Type = "ISSUE_UNLOCKED"
	TypeIssueTransferred  Type = "ISSUE_TRANSFERRED"
	TypeIssueMilestoned   Type = "ISSUE_MILESTONED"
	TypeIssueDemilestoned Type = "ISSUE_DEMILESTONED"

	TypePROpened               Type = "PR_OPENED"
	TypePRClosed               Type = "PR_CLOSED"
	TypePRReopened             Type = "PR_REOPENED"
	TypePREdited               Type = "PR_EDITED"
	TypePRAssigned             Type = "PR_ASSIGNED"
	TypePRUnassigned           Type = "PR_UNASSIGNED"
	TypePRReviewRequested      Type = "PR_REVIEW_REQUESTED"
	TypePRReviewRequestRemoved Type = "PR_REVIEW_REQUEST_REMOVED"
	TypePRLabeled              Type = "PR_LABELED"
	TypePRUnlabeled            Type = "PR_UNLABELED"
	TypePRSynchronize          Type = "PR_SYNCHRONIZE"
	TypePRReadyForReview       Type = "PR_READY_FOR_REVIEW"
	TypePRConvertedToDraft     Type = "PR_CONVERTED_TO_DRAFT"
	TypePRLocked               Type = "PR_LOCKED"
	TypePRUnlocked             Type = "PR_UNLOCKED"
	TypePRAutoMergeEnabled     Type = "PR_AUTO_MERGE_ENABLED"
	TypePRAutoMergeDisabled    Type = "PR_AUTO_MERGE_DISABLED"
	TypePRMilestoned           Type = "PR_MILESTONED"
	TypePRDemilestoned         Type = "PR_DEMILESTONED"

	TypePRReviewSubmitted Type = "PR_REVIEW_SUBMITTED"
	TypePRReviewEdited    Type = "PR_REVIEW_EDITED"
	TypePRReviewDismissed Type = "PR_REVIEW_DISMISSED"

	TypePRReviewCommentCreated Type = "PR_REVIEW_COMMENT_CREATED"
	TypePRReviewCommentEdited  Type = "PR_REVIEW_COMMENT_EDITED"
	TypePRReviewCommentDeleted Type = "PR_REVIEW_COMMENT_DELETED"
)

func (t Type) String() string {
	return string(t)
}

// Group is the coarse event family used to pick rendering rules.
type Group string

const (
	GroupNone                     Group = ""
	GroupCommitComment            Group = "COMMIT_COMMENT"
	GroupIssueComment             Group = "ISSUE_COMMENT"
	GroupIssue                    Group = "ISSUE"
	GroupPullRequest              Group = "PULL_REQUEST"
	GroupPullRequestReview        Group = "PULL_REQUEST_REVIEW"
	GroupPullRequestReviewComment Group = "PULL_REQUEST_REVIEW_COMMENT"
)

// Group maps each concrete Type to its family. TypeUnknown belongs to no
// group and must never reach the renderer.
func (t Type) Group() Group {
	switch t {
	case TypeCommitComment:
		return GroupCommitComment
	case TypeIssueCommentCreated, TypeIssueCommentEdited, TypeIssueCommentDeleted:
		return GroupIssueComment
	case TypeIssueOpened, TypeIssueEdited, TypeIssueDeleted, TypeIssuePinned,
		TypeIssueUnpinned, TypeIssueClosed, TypeIssueReopened, TypeIssueAssigned,
		TypeIssueUnassigned, TypeIssueLabeled, TypeIssueUnlabeled, TypeIssueLocked,
		TypeIssueUnlocked, TypeIssueTransferred, TypeIssueMilestoned, TypeIssueDemilestoned:
		return GroupIssue
	case TypePROpened, TypePRClosed, TypePRReopened, TypePREdited, TypePRAssigned,
		TypePRUnassigned, TypePRReviewRequested, TypePRReviewRequestRemoved,
		TypePRLabeled, TypePRUnlabeled, TypePRSynchronize, TypePRReadyForReview,
		TypePRConvertedToDraft, TypePRLocked, TypePRUnlocked, TypePRAutoMergeEnabled,
		TypePRAutoMergeDisabled, TypePRMilestoned, TypePRDemilestoned:
		return GroupPullRequest
	case TypePRReviewSubmitted, TypePRReviewEdited, TypePRReviewDismissed:
		return GroupPullRequestReview
	case TypePRReviewCommentCreated, TypePRReviewCommentEdited, TypePRReviewCommentDeleted:
		return GroupPullRequestReviewComment
	default:
		return GroupNone
	}
}

// Types returns every concrete member of the taxonomy, excluding TypeUnknown.
func Types() []Type {
	return []Type{
		TypeCommitComment,
		TypeIssueCommentCreated, TypeIssueCommentEdited, TypeIssueCommentDeleted,
		TypeIssueOpened, TypeIssueEdited, TypeIssueDeleted, TypeIssuePinned,
		TypeIssueUnpinned, TypeIssueClosed, TypeIssueReopened, TypeIssueAssigned,
		TypeIssueUnassigned, TypeIssueLabeled, TypeIssueUnlabeled, TypeIssueLocked,
		TypeIssueUnlocked, TypeIssueTransferred, TypeIssueMilestoned, TypeIssueDemilestoned,
		TypePROpened, TypePRClosed, TypePRReopened, TypePREdited, TypePRAssigned,
		TypePRUnassigned, TypePRReviewRequested, TypePRReviewRequestRemoved,
		TypePRLabeled, TypePRUnlabeled, TypePRSynchronize, TypePRReadyForReview,
		TypePRConvertedToDraft, TypePRLocked, TypePRUnlocked, TypePRAutoMergeEnabled,
		TypePRAutoMergeDisabled, TypePRMilestoned, TypePRDemilestoned,
		TypePRReviewSubmitted, TypePRReviewEdited, TypePRReviewDismissed,
		TypePRReviewCommentCreated, TypePRReviewCommentEdited, TypePRReviewCommentDeleted,
	}
}
