package analytics

type DailyTotals struct {
	TotalSales float64 `json:"total_sales"`
	Orders     int64   `json:"orders"`
}

// ItemCount is one group of the top items ranking; ID is the item title.
type ItemCount struct {
	ID    string `json:"_id"`
	Count int64  `json:"count"`
}

type DailyReport struct {
	TotalSales float64     `json:"total_sales"`
	Orders     int64       `json:"orders"`
	TopItems   []ItemCount `json:"top_items"`
}
