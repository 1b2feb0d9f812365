package domain

import (
	"fmt"
	"time"
)

// An Order is a composed snapshot of the cart plus customer info,
// ready for export. Composition validates the customer info and
// rejects an empty cart; an existing Order is always exportable.
type Order struct {
	Reference string
	Date      time.Time
	Customer  CustomerInfo
	Lines     []CartItem
	Totals    Totals
}

// PaymentCode is the M-Pesa USSD instruction for an amount. The
// amount is embedded raw, without grouping separators.
func PaymentCode(amount int64) string {
	return fmt.Sprintf("*182*8*1*%dfrw#", amount)
}

func (o Order) PaymentCode() string {
	return PaymentCode(o.Totals.GrandTotal)
}

// A Receipt is a rendered order card offered as a download.
type Receipt struct {
	Filename    string
	ContentType string
	Data        []byte
}
