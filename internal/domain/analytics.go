package domain

// AnalyticsKPIs are the headline dashboard numbers. Revenue counts ACTIVE
// and COMPLETED rentals only.
type AnalyticsKPIs struct {
	TotalRentals      int32 `json:"total_rentals"`
	ActiveRentals     int32 `json:"active_rentals"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

// MonthlyTrend is one month's rental count and income.
type MonthlyTrend struct {
	Name        string `json:"name"` // e.g. "Jan 2026"
	Rentals     int32  `json:"rentals"`
	IncomeCents int64  `json:"income_cents"`
}

// EquipmentUsage ranks a unit by how often it was requested, rejected
// requests excluded.
type EquipmentUsage struct {
	Name    string `json:"name"` // "<make> <model>"
	Rentals int32  `json:"rentals"`
}

// CustomerActivity ranks a requester by rentals and spend, rejected
// requests excluded.
type CustomerActivity struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Rentals         int32  `json:"rentals"`
	TotalSpentCents int64  `json:"total_spent_cents"`
}

type AnalyticsSummary struct {
	KPIs         AnalyticsKPIs      `json:"kpis"`
	Trends       []MonthlyTrend     `json:"trends"`
	Utilization  []EquipmentUsage   `json:"utilization"`
	TopCustomers []CustomerActivity `json:"top_customers"`
}
