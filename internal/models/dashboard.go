package models

// MonthlyPocketMoneyTotal is the pocket money given in one month of a year.
type MonthlyPocketMoneyTotal struct {
	Month int     `db:"month"`
	Given float64 `db:"given"`
}

// MonthlyLaundryTotal is the laundry activity of one month of a year.
type MonthlyLaundryTotal struct {
	Month   int     `db:"month"`
	Clothes int     `db:"clothes"`
	Cost    float64 `db:"cost"`
}

// LaundryTotals aggregates laundry activity for a period.
type LaundryTotals struct {
	Clothes int     `db:"clothes"`
	Cost    float64 `db:"cost"`
}
