package domain

// Amount is a decimal string with two fraction digits, e.g. "49.99",
// backed by NUMERIC(10,2).
type Payment struct {
	ID            int32  `json:"id"`
	UserID        int32  `json:"user_id"`
	RentalID      int32  `json:"rental_id"`
	Amount        string `json:"amount"`
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method"`
}
