package directory

const maxSalary = 10_000_000

var (
	EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Intern"}
	Genders         = []string{"Male", "Female", "Other"}
	DocumentKinds   = []string{"Contract", "ID", "Certificate", "Other"}
)
