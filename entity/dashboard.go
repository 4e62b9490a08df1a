package entity

// DashboardStats is the aggregate snapshot served to dashboards. Revenue is
// in minor currency units; formatting is a presentation concern.
type DashboardStats struct {
	ClassesToday   int64 `json:"classes_today"`
	MonthlyRevenue int64 `json:"monthly_revenue"`
	ActiveStudents int64 `json:"active_students"`
}
