package events

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	ApplicationID string
	JobID         string
	ApplicantID   string
	JobTitle      string
}

var ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"

type ApplicationStatusChanged struct {
	ApplicationID string
	JobID         string
	ApplicantID   string
	NewStatus     string
}
