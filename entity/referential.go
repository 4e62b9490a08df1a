package entity

import "time"

// ReferentialKind names a collection of standalone records that the deletion
// gateway may remove: schedule items, exams and events.
type ReferentialKind string

const (
	KindSchedule ReferentialKind = "schedule"
	KindExam     ReferentialKind = "exam"
	KindEvent    ReferentialKind = "event"
)

// ValidKind reports whether k names a deletable collection.
func ValidKind(k ReferentialKind) bool {
	switch k {
	case KindSchedule, KindExam, KindEvent:
		return true
	}
	return false
}

type Exam struct {
	ID      string    `json:"id" bson:"_id"`
	Subject string    `json:"subject" bson:"subject"`
	Cohort  string    `json:"cohort" bson:"cohort"`
	Date    time.Time `json:"date" bson:"date"`
}

type Event struct {
	ID    string    `json:"id" bson:"_id"`
	Title string    `json:"title" bson:"title"`
	Venue string    `json:"venue,omitempty" bson:"venue,omitempty"`
	Date  time.Time `json:"date" bson:"date"`
}
