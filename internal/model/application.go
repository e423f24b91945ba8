package model

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Application struct {
	ApplicationID int64             `json:"applicationId"`
	Status        ApplicationStatus `json:"status"`
	Job           *JobListing       `json:"job"`
	User          *User             `json:"user"`
}

func (a Application) Kind() Kind           { return KindApplication }
func (a Application) ItemID() int64        { return a.ApplicationID }
func (a Application) Accept(v ItemVisitor) { v.VisitApplication(a) }
func (a Application) sealed()              {}

func (a Application) JobTitle() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.Title
}

func (a Application) ApplicantName() string {
	if a.User == nil {
		return ""
	}
	return a.User.Username
}

func (a Application) ApplicantEmail() string {
	if a.User == nil {
		return ""
	}
	return a.User.Email
}
