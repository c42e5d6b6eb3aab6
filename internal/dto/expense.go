package dto

type CreateExpenseRequestDTO struct {
	TotalAmount     int64  `json:"total_amount" example:"10000"`
	ParticipantIDs  []int  `json:"participant_ids" example:"2,3,4"`
	RemainderPolicy string `json:"remainder_policy" example:"CREATOR_ABSORBS"`
	RoundUp         bool   `json:"round_up" example:"true"`
}

type ExpenseShareDTO struct {
	UserID       int    `json:"user_id" example:"2"`
	Amount       int64  `json:"amount" example:"2500"`
	Status       string `json:"status" example:"REQUESTED"`
	TiggleAmount int64  `json:"tiggle_amount,omitempty" example:"70"`
	PaidAmount   int64  `json:"paid_amount,omitempty" example:"2570"`
}

type ExpenseResponseDTO struct {
	ID          int               `json:"id" example:"1"`
	CreatorID   int               `json:"creator_id" example:"1"`
	TotalAmount int64             `json:"total_amount" example:"10000"`
	Status      string            `json:"status" example:"REQUESTED"`
	Shares      []ExpenseShareDTO `json:"shares"`
}

type PayShareRequestDTO struct {
	RoundUp bool `json:"round_up" example:"true"`
}

type PayShareResponseDTO struct {
	Status       string `json:"status" example:"PAID"`
	PaidAmount   int64  `json:"paid_amount" example:"2570"`
	TiggleAmount int64  `json:"tiggle_amount" example:"70"`
}
