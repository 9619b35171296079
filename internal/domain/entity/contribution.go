package entity

import "time"

// ContributionType distinguishes a free-form opinion from a proposed word.
type ContributionType string

const (
	ContributionOpinion ContributionType = "opinion"
	ContributionWord    ContributionType = "word"
)

// ContributionStatus is the moderation state of a submission.
type ContributionStatus string

const (
	StatusPending  ContributionStatus = "pending"
	StatusApproved ContributionStatus = "approved"
	StatusRejected ContributionStatus = "rejected"
)

// Valid reports whether s is a known moderation status.
func (s ContributionStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Contribution is a user-submitted suggestion awaiting moderation.
type Contribution struct {
	ID          string             `json:"id"`
	Type        ContributionType   `json:"type"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Categories  []string           `json:"categories"`
	ContactInfo string             `json:"contactInfo,omitempty"`
	SubmittedAt time.Time          `json:"submittedAt"`
	Status      ContributionStatus `json:"status"`
	SubmittedBy string             `json:"submittedBy,omitempty"`
}

// ContributionStats are the aggregate moderation counts, recomputed on demand.
type ContributionStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
