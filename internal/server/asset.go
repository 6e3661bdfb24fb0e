package server

import "time"

// Asset is the sample entity served by the built-in list endpoint. Its
// json tags are the field names clients may reference in sort, desc,
// fields and filter parameters.
type Asset struct {
	ID        string    `json:"id"`
	URN       string    `json:"urn"`
	Name      string    `json:"name"`
	Service   string    `json:"service"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
