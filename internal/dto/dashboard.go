package dto

// DashboardStats is the headline figures for the current month.
type DashboardStats struct {
	Month                     int     `json:"month"`
	Year                      int     `json:"year"`
	TotalStudents             int     `json:"totalStudents"`
	PocketMoneyGivenThisMonth float64 `json:"pocketMoneyGivenThisMonth"`
	PocketMoneyRemaining      float64 `json:"pocketMoneyRemaining"`
	ClothesWashedThisMonth    int     `json:"clothesWashedThisMonth"`
	MonthlyLaundryCost        float64 `json:"monthlyLaundryCost"`
}

// PocketMoneyChartPoint is one month of the pocket money chart.
type PocketMoneyChartPoint struct {
	Month     string  `json:"month"`
	Given     float64 `json:"given"`
	Remaining float64 `json:"remaining"`
}

// LaundryChartPoint is one month of the laundry chart.
type LaundryChartPoint struct {
	Month   string  `json:"month"`
	Clothes int     `json:"clothes"`
	Cost    float64 `json:"cost"`
}
