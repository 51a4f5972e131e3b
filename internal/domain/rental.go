package domain

// Status is free text on the wire; only these two values carry meaning.
const (
	RentalStatusRented   = "rented"
	RentalStatusReturned = "returned"
)

type Rental struct {
	ID         int32   `json:"id"`
	UserID     int32   `json:"user_id"`
	GameID     int32   `json:"game_id"`
	RentDate   string  `json:"rent_date"`
	ReturnDate *string `json:"return_date,omitempty"`
	Status     string  `json:"status"`
}

// MonthlyRentalCount is one row of the monthly summary: rentals per game
// title within a given month and year.
type MonthlyRentalCount struct {
	Title        string `json:"title"`
	TotalRentals int32  `json:"total_rentals"`
}
