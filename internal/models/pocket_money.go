package models

import "time"

// PocketMoneyTransaction is a single disbursement to a student. Month and Year always mirror
// TransactionDate.
type PocketMoneyTransaction struct {
	ID              string    `db:"id" json:"id"`
	StudentID       string    `db:"student_id" json:"student_id"`
	Amount          float64   `db:"amount" json:"amount"`
	Month           int       `db:"month" json:"month"`
	Year            int       `db:"year" json:"year"`
	TransactionDate time.Time `db:"transaction_date" json:"transaction_date"`
	Remarks         *string   `db:"remarks" json:"remarks,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// PocketMoneyEntry is a transaction joined with the receiving student.
type PocketMoneyEntry struct {
	ID              string    `db:"id" json:"id"`
	StudentID       string    `db:"student_id" json:"studentId"`
	StudentCode     string    `db:"student_code" json:"studentCode"`
	StudentName     string    `db:"student_name" json:"studentName"`
	Month           int       `db:"month" json:"month"`
	Year            int       `db:"year" json:"year"`
	AmountAssigned  float64   `db:"amount_assigned" json:"amountAssigned"`
	AmountGiven     float64   `db:"amount_given" json:"amountGiven"`
	TransactionDate time.Time `db:"transaction_date" json:"date"`
	Remarks         *string   `db:"remarks" json:"notes,omitempty"`
}

// PocketMoneyBalance is the per-student monthly position used by the pocket money screen.
type PocketMoneyBalance struct {
	StudentID          string  `db:"student_id" json:"student_id"`
	StudentCode        string  `db:"student_code" json:"student_code"`
	Name               string  `db:"name" json:"name"`
	MonthlyPocketMoney float64 `db:"monthly_pocket_money" json:"monthly_pocket_money"`
	Given              float64 `db:"given" json:"given"`
	Remaining          float64 `db:"remaining" json:"remaining"`
}
