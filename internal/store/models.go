package store

import "strconv"

// Asset is one row of the Equipment relation.
type Asset struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	InventoryTag string `json:"inventory_tag"`
	Location     string `json:"location"`
	Custodian    string `json:"custodian"`
}

// Fields returns the five caller-facing columns in display order:
// name, quantity, tag, location, custodian.
func (a Asset) Fields() []string {
	return []string{a.Name, strconv.Itoa(a.Quantity), a.InventoryTag, a.Location, a.Custodian}
}

// Room is one row of the Rooms reference relation.
type Room struct {
	ID          int64  `json:"id"`
	Number      string `json:"room_number"`
	Building    string `json:"building"`
	Floor       int    `json:"floor"`
	Purpose     string `json:"purpose,omitempty"`
	Responsible string `json:"responsible,omitempty"`
}
