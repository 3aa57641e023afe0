package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Purpose string

const (
	PurposeMeeting   Purpose = "Meeting"
	PurposeDelivery  Purpose = "Delivery"
	PurposeInterview Purpose = "Interview"
)

type Reference string

const (
	ReferenceManager  Reference = "Manager"
	ReferenceHR       Reference = "HR"
	ReferenceEmployee Reference = "Employee"
)

var (
	Genders    = []Gender{GenderMale, GenderFemale, GenderOther}
	Purposes   = []Purpose{PurposeMeeting, PurposeDelivery, PurposeInterview}
	References = []Reference{ReferenceManager, ReferenceHR, ReferenceEmployee}
)

// VisitorDetails is the visitor-detail form.
type VisitorDetails struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	Gender      Gender
	Purpose     Purpose
	Description string
	WhomToMeet  string
	IDProof     string
	Reference   Reference
}

// Visitor is one roster entry. It lives only as long as the dashboard that
// created it.
type Visitor struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Details   *VisitorDetails
}
