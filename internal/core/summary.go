package core

// ItemSales is per-item quantity and revenue aggregated across orders.
// Aggregation keys on the item name, so two distinct menu items sharing
// a name report as one row.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CategoryTotal is the expense sum for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DailyEntry is one calendar day of the dashboard trend series.
type DailyEntry struct {
	Date     Date    `json:"date"`
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// Summary holds the headline metrics for a date range.
type Summary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalExpenses     float64 `json:"total_expenses"`
	OrderCount        int     `json:"order_count"`
	AverageOrderValue float64 `json:"average_order_value"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profit_margin"`
}
