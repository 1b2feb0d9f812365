package domain

import "strings"

// CustomerInfo is transient order-form state. It is validated only
// at order composition time and never persisted.
type CustomerInfo struct {
	Name    string
	Address string
	Phone   string
}

func (c CustomerInfo) Trimmed() CustomerInfo {
	return CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
		Phone:   strings.TrimSpace(c.Phone),
	}
}

func (c CustomerInfo) Validate() error {
	t := c.Trimmed()
	if t.Name == "" || t.Address == "" || t.Phone == "" {
		return ErrCustomerInfo
	}
	return nil
}
