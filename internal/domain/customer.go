package domain

import "time"

// Customer represents a front-desk customer record.
// The schedule engine references customers by id and caches the name;
// the record itself is owned by the customer store.
type Customer struct {
	ID        string
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerUpdate is a partial update of a customer record
type CustomerUpdate struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

// IsEmpty returns true if the update carries no fields
func (u *CustomerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil && u.Notes == nil
}
