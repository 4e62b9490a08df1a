package entity

import "time"

// ScheduledClass is one timetable occurrence. Date carries the day the class
// runs on; the daily dashboard count filters on it with a half-open window.
type ScheduledClass struct {
	ID      string    `json:"id" bson:"_id"`
	Subject string    `json:"subject" bson:"subject"`
	Cohort  string    `json:"cohort" bson:"cohort"`
	Teacher string    `json:"teacher,omitempty" bson:"teacher,omitempty"`
	Room    string    `json:"room,omitempty" bson:"room,omitempty"`
	Date    time.Time `json:"date" bson:"date"`
}
