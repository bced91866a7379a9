package dto

// PocketMoneyRequest records a pocket money disbursement. The month and year are derived from
// TransactionDate.
type PocketMoneyRequest struct {
	StudentID       string   `json:"student_id" validate:"required,uuid"`
	Amount          *float64 `json:"amount" validate:"required,gte=0"`
	TransactionDate string   `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Remarks         *string  `json:"remarks,omitempty" validate:"omitempty,max=255"`
}
