package recruiting

import "github.com/bangasho83/hummane/internal/domain/directory"

// Role title sentinels. A job that names a role nobody can resolve reads
// differently from a job that never named one.
const (
	UnknownRole    = "Unknown role"
	NoRoleAssigned = "No role assigned"
)

// GroupByStage buckets applicants by pipeline stage. Every stage key is
// present in the result even when its bucket is empty, and applicants keep
// their relative order from the input slice.
func GroupByStage(applicants []Applicant) map[string][]Applicant {
	grouped := make(map[string][]Applicant, len(Stages))
	for _, stage := range Stages {
		grouped[stage] = []Applicant{}
	}
	for _, applicant := range applicants {
		if _, known := grouped[applicant.Status]; !known {
			continue
		}
		grouped[applicant.Status] = append(grouped[applicant.Status], applicant)
	}
	return grouped
}

// StageCounts reports the funnel size per stage, all seven stages included.
func StageCounts(applicants []Applicant) map[string]int {
	counts := make(map[string]int, len(Stages))
	for _, stage := range Stages {
		counts[stage] = 0
	}
	for _, applicant := range applicants {
		if _, known := counts[applicant.Status]; !known {
			continue
		}
		counts[applicant.Status]++
	}
	return counts
}

// ResolveRoleTitle maps a job's role reference to a display title. A set
// but unresolvable roleId yields UnknownRole; an absent roleId yields
// NoRoleAssigned.
func ResolveRoleTitle(job Job, roles []directory.Role) string {
	if job.RoleID == "" {
		return NoRoleAssigned
	}
	for _, role := range roles {
		if role.ID == job.RoleID {
			return role.Title
		}
	}
	return UnknownRole
}

// JobForApplicant finds the job an applicant belongs to. A jobId match wins;
// otherwise the first job in collection order whose title equals the
// applicant's positionApplied exactly is used as a fallback.
func JobForApplicant(applicant Applicant, jobs []Job) (Job, bool) {
	if applicant.JobID != "" {
		for _, job := range jobs {
			if job.ID == applicant.JobID {
				return job, true
			}
		}
	}
	for _, job := range jobs {
		if job.Title == applicant.PositionApplied {
			return job, true
		}
	}
	return Job{}, false
}
