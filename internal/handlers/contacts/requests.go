package contacts

import "gitlab.com/contact-site.net/internal/domain"

// SubmitContactResponse is returned when a submission is stored
type SubmitContactResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

// ListSubmissionsResponse is returned by the listing endpoint
type ListSubmissionsResponse struct {
	Success     bool                 `json:"success"`
	Count       int                  `json:"count"`
	Submissions []*domain.Submission `json:"submissions"`
}

const SubmitSuccessMessage = "Your message has been received successfully!"
