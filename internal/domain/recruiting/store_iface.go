package recruiting

import "context"

type StoreAPI interface {
	CreateJob(ctx context.Context, companyID string, input JobInput) (string, error)
	UpdateJob(ctx context.Context, companyID, id string, input JobInput) error
	DeleteJob(ctx context.Context, companyID, id string) error
	GetJob(ctx context.Context, companyID, id string) (Job, error)
	ListJobs(ctx context.Context, companyID string) ([]Job, error)

	CreateApplicant(ctx context.Context, companyID string, input ApplicantInput) (string, error)
	UpdateApplicant(ctx context.Context, companyID, id string, input ApplicantInput) error
	MoveApplicant(ctx context.Context, companyID, id, stage string) error
	DeleteApplicant(ctx context.Context, companyID, id string) error
	GetApplicant(ctx context.Context, companyID, id string) (Applicant, error)
	ListApplicants(ctx context.Context, companyID string) ([]Applicant, error)

	SetApplicantResume(ctx context.Context, companyID, id, fileName string, data []byte) error
	GetApplicantResume(ctx context.Context, companyID, id string) (string, []byte, error)
}
