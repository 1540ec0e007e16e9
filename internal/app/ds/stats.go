package ds

// FleetStats — сводные счетчики по автопарку для дашборда
type FleetStats struct {
	ActiveVehicles  int64   `json:"active_vehicles"`
	ActiveRoutes    int64   `json:"active_routes"`
	PendingRequests int64   `json:"pending_requests"`
	TotalFuel       float64 `json:"total_fuel"`
}
