package classes

type CreateClassRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Image           string  `json:"image" validate:"omitempty,url"`
	InstructorName  string  `json:"instructorName" validate:"omitempty,max=200"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	Price           float64 `json:"price" validate:"gte=0"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending approved denied"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
