package recruiting

const (
	StageNew           = "new"
	StageFirst         = "first interview"
	StageSecond        = "second interview"
	StageFinal         = "final interview"
	StageDocumentation = "initiate documentation"
	StageHired         = "hired"
	StageRejected      = "rejected"

	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Stages is the hiring funnel in board order. Any stage may move to any
// other stage; "hired" and "rejected" are terminal by convention only.
var Stages = []string{
	StageNew,
	StageFirst,
	StageSecond,
	StageFinal,
	StageDocumentation,
	StageHired,
	StageRejected,
}

var JobStatuses = []string{JobStatusOpen, JobStatusClosed}
