package dto

type PiggyBankResponseDTO struct {
	AccountNumber       string `json:"account_number" example:"4929972807244364"`
	CurrentAmount       int64  `json:"current_amount" example:"4200"`
	TargetAmount        int64  `json:"target_amount" example:"5000"`
	AutoSaving          bool   `json:"auto_saving" example:"true"`
	AutoDonation        bool   `json:"auto_donation" example:"false"`
	Theme               string `json:"theme,omitempty" example:"PLANET"`
	SavingCount         int    `json:"saving_count" example:"12"`
	DonationCount       int    `json:"donation_count" example:"2"`
	DonationTotalAmount int64  `json:"donation_total_amount" example:"10000"`
}

type UpdatePiggyBankRequestDTO struct {
	TargetAmount *int64  `json:"target_amount,omitempty" example:"5000"`
	AutoSaving   *bool   `json:"auto_saving,omitempty" example:"true"`
	AutoDonation *bool   `json:"auto_donation,omitempty" example:"true"`
	Theme        *string `json:"theme,omitempty" example:"PEOPLE"`
}
