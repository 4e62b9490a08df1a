package entity

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
)

// ValidStatus reports whether s is one of the known attendance statuses.
func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Attendance is one day record for one student. The pair (student_id, date)
// is unique across the collection; a unique compound index enforces that at
// the storage layer. Date carries day precision only.
type Attendance struct {
	StudentID string           `json:"student_id" bson:"student_id"`
	Date      time.Time        `json:"date" bson:"date"`
	Status    AttendanceStatus `json:"status" bson:"status"`
	Notes     string           `json:"notes,omitempty" bson:"notes,omitempty"`
	MarkedBy  string           `json:"marked_by,omitempty" bson:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}

// NewAttendance creates a day record. The caller is responsible for
// normalizing date to local midnight before persisting.
func NewAttendance(studentID string, date time.Time, status AttendanceStatus, notes, markedBy string) *Attendance {
	return &Attendance{
		StudentID: studentID,
		Date:      date,
		Status:    status,
		Notes:     notes,
		MarkedBy:  markedBy,
		CreatedAt: time.Now(),
	}
}
