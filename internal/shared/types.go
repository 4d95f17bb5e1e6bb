package shared

import "time"

// Task types xử lý bởi cmd/worker
const (
	TypeRefreshDashboardStats = "dashboard:refresh_stats"
)

// Queue names
const (
	QueueDefault   = "default"
	QueueDashboard = "dashboard"
)

// RefreshStatsPayload: UserID rỗng = refresh admin/manager stats
type RefreshStatsPayload struct {
	UserID    string    `json:"userId,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Requested time.Time `json:"requested"`
}

// Context keys set bởi auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleArtist  = "artist"
)

// IsStaff: admin và manager thấy dữ liệu toàn hệ thống
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleManager
}
