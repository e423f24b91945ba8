package model

type JobCategory struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type JobListing struct {
	JobID       int64        `json:"jobId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Salary      float64      `json:"salary"`
	JobCategory *JobCategory `json:"jobCategory"`
}

func (j JobListing) Kind() Kind           { return KindJobListing }
func (j JobListing) ItemID() int64        { return j.JobID }
func (j JobListing) Accept(v ItemVisitor) { v.VisitJobListing(j) }
func (j JobListing) sealed()              {}

// CategoryName returns the listing's category, or "" when uncategorized.
func (j JobListing) CategoryName() string {
	if j.JobCategory == nil {
		return ""
	}
	return j.JobCategory.CategoryName
}
