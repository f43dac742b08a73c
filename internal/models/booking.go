package models

import "fmt"

// BookingEntry is one confirmed passenger booking
type BookingEntry struct {
	Name           string `json:"name"`
	BookingNumber  int64  `json:"bookingNumber"`
	Train          string `json:"train"`
	TotalPrice     string `json:"totalPrice"`
	Currency       string `json:"currency"`
	DiscountStatus string `json:"discountStatus"`
}

// NewBookingEntry creates a BookingEntry, formatting the price to two decimals
func NewBookingEntry(name string, bookingNumber int64, train string, totalPrice float64, currency, discountStatus string) BookingEntry {
	return BookingEntry{
		Name:           name,
		BookingNumber:  bookingNumber,
		Train:          train,
		TotalPrice:     FormatPrice(totalPrice),
		Currency:       currency,
		DiscountStatus: discountStatus,
	}
}

// FormatPrice renders a price with two decimals, e.g. 1914 -> "1914.00".
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
