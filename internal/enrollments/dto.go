package enrollments

type SelectClassRequest struct {
	UserEmail      string  `json:"userEmail" validate:"required,email"`
	ClassID        string  `json:"classId" validate:"required,uuid"`
	ClassName      string  `json:"className" validate:"omitempty,max=200"`
	Image          string  `json:"image" validate:"omitempty,url"`
	InstructorName string  `json:"instructorName" validate:"omitempty,max=200"`
	Price          float64 `json:"price" validate:"gte=0"`
}
