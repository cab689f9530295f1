package models

// OrganizationProfile is the organization's standalone profile record. It is
// persisted independently of event requests; the json tags are fixed so
// saved profiles keep loading.
type OrganizationProfile struct {
	OrgName  string `json:"orgName"`
	OrgEmail string `json:"orgEmail"`

	EventCoordinatorName  string `json:"eventCoordinatorName"`
	EventCoordinatorCell  string `json:"eventCoordinatorCell"`
	EventCoordinatorEmail string `json:"eventCoordinatorEmail"`

	AdvisorName  string `json:"advisorName"`
	AdvisorEmail string `json:"advisorEmail"`
	AdvisorCell  string `json:"advisorCell"`

	OrgDescription string `json:"orgDescription"`

	// ProfilePicURL holds the uploaded picture inline as a
	// data:<mime>;base64 URL.
	ProfilePicURL string `json:"profilePicURL,omitempty"`
}
