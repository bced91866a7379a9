package dto

// StudentRequest is the create and update payload for students.
type StudentRequest struct {
	StudentID          string   `json:"studentId" validate:"required,max=64"`
	Name               string   `json:"name" validate:"required,max=255"`
	Class              string   `json:"class" validate:"required,max=64"`
	Section            *string  `json:"section,omitempty" validate:"omitempty,max=64"`
	ParentName         string   `json:"parentName" validate:"required,max=255"`
	MonthlyPocketMoney *float64 `json:"monthlyPocketMoney" validate:"required,gte=0"`
	Status             string   `json:"status" validate:"omitempty,oneof=active inactive"`
}
