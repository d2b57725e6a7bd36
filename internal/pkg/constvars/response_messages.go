package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	GetDashboardSuccessMessage = "get dashboard successfully"
	HealthOKMessage            = "ok"
)
