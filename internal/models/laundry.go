package models

import "time"

// LaundryStaff is a dhobi contracted to wash students' clothes.
type LaundryStaff struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	PerClothRate float64   `db:"per_cloth_rate" json:"perClothRate"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// LaundryRecord is one batch of clothes washed for a student. TotalAmount is always
// ClothesCount x RatePerCloth.
type LaundryRecord struct {
	ID           string    `db:"id" json:"id"`
	StudentID    string    `db:"student_id" json:"studentId"`
	StaffID      string    `db:"staff_id" json:"staffId"`
	ClothesCount int       `db:"clothes_count" json:"clothesCount"`
	RatePerCloth float64   `db:"rate_per_cloth" json:"ratePerCloth"`
	TotalAmount  float64   `db:"total_amount" json:"totalAmount"`
	RecordDate   time.Time `db:"record_date" json:"date"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// LaundryEntry is a laundry record joined with student and dhobi names.
type LaundryEntry struct {
	ID           string    `db:"id" json:"id"`
	StudentID    string    `db:"student_id" json:"studentId"`
	StudentCode  string    `db:"student_code" json:"studentCode"`
	StudentName  string    `db:"student_name" json:"studentName"`
	StaffID      string    `db:"staff_id" json:"staffId"`
	StaffName    string    `db:"staff_name" json:"dhobiName"`
	ClothesCount int       `db:"clothes_count" json:"clothesCount"`
	RatePerCloth float64   `db:"rate_per_cloth" json:"ratePerCloth"`
	TotalAmount  float64   `db:"total_amount" json:"totalAmount"`
	RecordDate   time.Time `db:"record_date" json:"date"`
}

// LaundryStaffReport aggregates one dhobi's workload for a month.
type LaundryStaffReport struct {
	StaffID      string  `db:"staff_id" json:"staffId"`
	Name         string  `db:"name" json:"name"`
	TotalClothes int     `db:"total_clothes" json:"totalClothes"`
	TotalAmount  float64 `db:"total_amount" json:"totalAmount"`
}

// LaundryStudentSummary aggregates one student's laundry for a month.
type LaundryStudentSummary struct {
	StudentID    string  `db:"student_id" json:"studentId"`
	StudentCode  string  `db:"student_code" json:"studentCode"`
	Name         string  `db:"name" json:"name"`
	ClassSection string  `db:"class_section" json:"classSection"`
	TotalClothes int     `db:"total_clothes" json:"totalClothes"`
	TotalCost    float64 `db:"total_cost" json:"totalCost"`
	Entries      int     `db:"entries" json:"entries"`
}

// LaundryFilter narrows laundry listings to one month.
type LaundryFilter struct {
	Month     int
	Year      int
	StudentID string
	StaffID   string
}
