package employee

type Employee struct {
	ID     string
	Name   string
	Gender Gender
	// Role is the role-group/project label used for exemption and
	// pooling rules (e.g. WAREHOUSE, TL, ADMIN, CLEANING).
	Role   string
	Status Status
}

type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
