package dto

// LaundryStaffRequest is the create and update payload for dhobis.
type LaundryStaffRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Phone        string   `json:"phone" validate:"omitempty,max=32"`
	PerClothRate *float64 `json:"perClothRate" validate:"required,gte=0"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// LaundryRecordRequest records a batch of washed clothes. Any total supplied by the caller is
// ignored; when RatePerCloth is omitted the dhobi's own rate applies.
type LaundryRecordRequest struct {
	StudentID    string   `json:"student_id" validate:"required,uuid"`
	StaffID      string   `json:"staff_id" validate:"required,uuid"`
	ClothesCount int      `json:"clothes_count" validate:"required,gt=0"`
	RatePerCloth *float64 `json:"rate_per_cloth,omitempty" validate:"omitempty,gte=0"`
	RecordDate   string   `json:"record_date" validate:"required,datetime=2006-01-02"`
}
