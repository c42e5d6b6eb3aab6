package domain

import "time"

type User struct {
	ID             int       `db:"id"`
	Login          string    `db:"login"`
	PasswordHash   string    `db:"password_hash"`
	BankCredential string    `db:"bank_credential"`
	PrimaryAccount string    `db:"primary_account"`
	UniversityID   int       `db:"university_id"`
	DonationReady  bool      `db:"donation_ready"`
	CreatedAt      time.Time `db:"created_at"`
}

// Theme is one of the three ESG donation categories a university keeps a
// dedicated account for.
type Theme string

const (
	ThemePlanet   Theme = "PLANET"
	ThemePeople   Theme = "PEOPLE"
	ThemeProgress Theme = "PROGRESS"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemePlanet, ThemePeople, ThemeProgress:
		return true
	}
	return false
}

type PiggyBank struct {
	ID                  int    `db:"id"`
	UserID              int    `db:"user_id"`
	AccountNumber       string `db:"account_number"`
	CurrentAmount       int64  `db:"current_amount"`
	TargetAmount        int64  `db:"target_amount"`
	AutoSaving          bool   `db:"auto_saving"`
	AutoDonation        bool   `db:"auto_donation"`
	Theme               Theme  `db:"theme"`
	SavingCount         int    `db:"saving_count"`
	DonationCount       int    `db:"donation_count"`
	DonationTotalAmount int64  `db:"donation_total_amount"`
}

type University struct {
	ID              int    `db:"id"`
	Name            string `db:"name"`
	PlanetAccount   string `db:"planet_account"`
	PeopleAccount   string `db:"people_account"`
	ProgressAccount string `db:"progress_account"`
}

// ThemeAccount returns the university's account for the given theme, empty
// when the theme is unknown or the account was never provisioned.
func (u University) ThemeAccount(theme Theme) string {
	switch theme {
	case ThemePlanet:
		return u.PlanetAccount
	case ThemePeople:
		return u.PeopleAccount
	case ThemeProgress:
		return u.ProgressAccount
	}
	return ""
}

const (
	// ExpenseRequested — shares are still being collected.
	ExpenseRequested string = "REQUESTED"
	// ExpenseCompleted — every share is paid; terminal.
	ExpenseCompleted string = "COMPLETED"

	// ShareRequested — the participant has not settled yet.
	ShareRequested string = "REQUESTED"
	// SharePaid — settled exactly once; terminal.
	SharePaid string = "PAID"
)

type DutchExpense struct {
	ID               int       `db:"id"`
	CreatorID        int       `db:"creator_id"`
	TotalAmount      int64     `db:"total_amount"`
	Status           string    `db:"status"`
	RoundedPerPerson int64     `db:"rounded_per_person"`
	CreatedAt        time.Time `db:"created_at"`
}

type ExpenseShare struct {
	ID           int    `db:"id"`
	ExpenseID    int    `db:"expense_id"`
	UserID       int    `db:"user_id"`
	Amount       int64  `db:"amount"`
	Status       string `db:"status"`
	TiggleAmount int64  `db:"tiggle_amount"`
	PaidAmount   int64  `db:"paid_amount"`
}

type DonationRecord struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	UniversityID int       `db:"university_id"`
	Theme        Theme     `db:"theme"`
	Amount       int64     `db:"amount"`
	RunID        string    `db:"run_id"`
	CreatedAt    time.Time `db:"created_at"`
}
