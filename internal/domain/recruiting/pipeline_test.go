package recruiting

import (
	"testing"

	"github.com/bangasho83/hummane/internal/domain/directory"
)

func TestGroupByStageAlwaysHasEveryStage(t *testing.T) {
	grouped := GroupByStage(nil)

	if len(grouped) != len(Stages) {
		t.Fatalf("expected %d stage buckets, got %d", len(Stages), len(grouped))
	}
	for _, stage := range Stages {
		bucket, ok := grouped[stage]
		if !ok {
			t.Fatalf("missing bucket for stage %q", stage)
		}
		if bucket == nil || len(bucket) != 0 {
			t.Fatalf("expected empty non-nil bucket for %q, got %#v", stage, bucket)
		}
	}
}

func TestGroupByStagePreservesOrder(t *testing.T) {
	applicants := []Applicant{
		{ID: "a1", Status: StageNew},
		{ID: "a2", Status: StageHired},
		{ID: "a3", Status: StageNew},
		{ID: "a4", Status: StageNew},
	}

	grouped := GroupByStage(applicants)

	got := grouped[StageNew]
	if len(got) != 3 {
		t.Fatalf("expected 3 applicants in %q, got %d", StageNew, len(got))
	}
	for i, want := range []string{"a1", "a3", "a4"} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
	if len(grouped[StageHired]) != 1 || grouped[StageHired][0].ID != "a2" {
		t.Fatalf("unexpected hired bucket: %#v", grouped[StageHired])
	}
}

func TestStageCounts(t *testing.T) {
	applicants := []Applicant{
		{Status: StageNew},
		{Status: StageNew},
		{Status: StageRejected},
	}

	counts := StageCounts(applicants)

	if len(counts) != len(Stages) {
		t.Fatalf("expected all %d stages counted, got %d", len(Stages), len(counts))
	}
	if counts[StageNew] != 2 {
		t.Fatalf("expected 2 in %q, got %d", StageNew, counts[StageNew])
	}
	if counts[StageFinal] != 0 {
		t.Fatalf("expected 0 in %q, got %d", StageFinal, counts[StageFinal])
	}
}

func TestResolveRoleTitle(t *testing.T) {
	roles := []directory.Role{
		{ID: "r1", Title: "Backend Engineer"},
		{ID: "r2", Title: "Designer"},
	}

	tests := []struct {
		name string
		job  Job
		want string
	}{
		{name: "resolved", job: Job{RoleID: "r2"}, want: "Designer"},
		{name: "set but unresolved", job: Job{RoleID: "r9"}, want: UnknownRole},
		{name: "never assigned", job: Job{}, want: NoRoleAssigned},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRoleTitle(tc.job, roles); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestJobForApplicantPrefersJobID(t *testing.T) {
	jobs := []Job{
		{ID: "j1", Title: "Engineer"},
		{ID: "j2", Title: "Engineer"},
		{ID: "j3", Title: "Analyst"},
	}

	applicant := Applicant{JobID: "j3", PositionApplied: "Engineer"}
	job, ok := JobForApplicant(applicant, jobs)
	if !ok || job.ID != "j3" {
		t.Fatalf("expected jobId match j3, got %#v ok=%v", job, ok)
	}
}

func TestJobForApplicantTitleFallbackFirstMatch(t *testing.T) {
	jobs := []Job{
		{ID: "j1", Title: "Analyst"},
		{ID: "j2", Title: "Engineer"},
		{ID: "j3", Title: "Engineer"},
	}

	applicant := Applicant{PositionApplied: "Engineer"}
	job, ok := JobForApplicant(applicant, jobs)
	if !ok || job.ID != "j2" {
		t.Fatalf("expected first title match j2, got %#v ok=%v", job, ok)
	}
}

func TestJobForApplicantExactTitleOnly(t *testing.T) {
	jobs := []Job{{ID: "j1", Title: "Engineer"}}

	if _, ok := JobForApplicant(Applicant{PositionApplied: "engineer"}, jobs); ok {
		t.Fatal("case-insensitive title match should not resolve")
	}
	if _, ok := JobForApplicant(Applicant{JobID: "missing", PositionApplied: "Nobody"}, jobs); ok {
		t.Fatal("unresolvable applicant should not resolve")
	}
}
