package types //nolint:revive

// VoteOutcome describes the effect a successful vote call had on its proposal.
type VoteOutcome string

const (
	// VoteRecorded means the vote was tallied and the proposal stays Active.
	VoteRecorded VoteOutcome = "Recorded"
	// VoteApproved means the vote crossed the threshold and the handler ran.
	VoteApproved VoteOutcome = "Approved"
	// VoteRejected means the vote made approval mathematically impossible.
	VoteRejected VoteOutcome = "Rejected"
)
