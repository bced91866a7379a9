package models

import "time"

// Record status values shared by students and laundry staff.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Student represents a boarder registered with the hostel.
type Student struct {
	ID                 string    `db:"id" json:"id"`
	StudentCode        string    `db:"student_code" json:"studentId"`
	Name               string    `db:"name" json:"name"`
	Class              string    `db:"class" json:"class"`
	Section            *string   `db:"section" json:"section,omitempty"`
	ParentName         string    `db:"parent_name" json:"parentName"`
	MonthlyPocketMoney float64   `db:"monthly_pocket_money" json:"monthlyPocketMoney"`
	Status             string    `db:"status" json:"status"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search    string
	Class     string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
