package demo

// Organization is a mock organization the user belongs to
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Plan string `json:"plan"`
}

// OrganizationList is the response of the user organizations endpoint
type OrganizationList struct {
	Organizations         []Organization `json:"organizations"`
	CurrentOrganizationID string         `json:"currentOrganizationId"`
}

// Organizations returns the fixed organizations list
func Organizations() OrganizationList {
	return OrganizationList{
		Organizations: []Organization{
			{ID: "org-1", Name: "Acme Corp", Role: "admin", Plan: "enterprise"},
			{ID: "org-2", Name: "Platform Team", Role: "member", Plan: "team"},
			{ID: "org-3", Name: "Personal", Role: "owner", Plan: "free"},
		},
		CurrentOrganizationID: "org-1",
	}
}
