package dto

// DashboardStats is the aggregate snapshot shown on the admin landing page.
type DashboardStats struct {
	TotalRegistrations     int64   `json:"total_registrations"`
	PendingRegistrations   int64   `json:"pending_registrations"`
	ConfirmedRegistrations int64   `json:"confirmed_registrations"`
	TotalPurchases         int64   `json:"total_purchases"`
	TotalEnrollments       int64   `json:"total_enrollments"`
	TotalSessions          int64   `json:"total_sessions"`
	TotalMessages          int64   `json:"total_messages"`
	UnreadMessages         int64   `json:"unread_messages"`
	TotalRevenue           float64 `json:"total_revenue"`
}

// RevenueBreakdown reports completed-payment revenue per income source.
type RevenueBreakdown struct {
	Registrations float64 `json:"registrations"`
	BookSales     float64 `json:"book_sales"`
	Trainings     float64 `json:"trainings"`
	MoreLife      float64 `json:"morelife"`
	Total         float64 `json:"total"`
}
