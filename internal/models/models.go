package models

import (
	"time"

	"github.com/lib/pq"
)

type JobType string

const (
	FullTime   JobType = "Full-time"
	PartTime   JobType = "Part-time"
	Remote     JobType = "Remote"
	Internship JobType = "Internship"
)

// JobTypes lists every job type in display order.
var JobTypes = []JobType{FullTime, PartTime, Remote, Internship}

func (t JobType) Valid() bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

// Job is a catalog record. Catalog rows are written once by the seeder and
// only read afterwards.
type Job struct {
	// Seq keeps source order in the database; source order is recency order.
	Seq uint `gorm:"autoIncrement;uniqueIndex" json:"-"`

	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Company     string         `gorm:"not null;index" json:"company"`
	Logo        string         `json:"logo"`
	Location    string         `json:"location"`
	Type        JobType        `gorm:"type:text" json:"type"`
	Salary      string         `json:"salary"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Description string         `gorm:"type:text" json:"description"`
	Posted      string         `json:"posted"`
}

// Company is a "trusted company" shown on the home page.
type Company struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Logo string `json:"logo"`
}

// JobPosting is a normalized, validated job submitted through the posting form.
type JobPosting struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string         `gorm:"not null" json:"title"`
	Company     string         `gorm:"not null" json:"company"`
	Location    string         `json:"location"`
	Type        JobType        `gorm:"type:text" json:"type"`
	Salary      string         `json:"salary"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Description string         `gorm:"type:text" json:"description"`
	Posted      string         `json:"posted"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}

const EventApplied = "APPLIED"

type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     string    `gorm:"index" json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}
