package models

import "time"

type Category struct {
	ID   int64
	Name string
}

// Checkout is a placed order's shipping and payment summary.
type Checkout struct {
	ID         int64
	UserID     int64
	Recipient  string
	Phone      string
	Zipcode    string
	Address1   string
	Address2   string
	Request    string
	TotalPrice int64
	Status     string
	CreatedAt  time.Time
}
