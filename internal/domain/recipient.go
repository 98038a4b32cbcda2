package domain

// Sentinel used by the upstream roster data to mean "no room number".
// Display code must treat it the same as an absent value.
const NoRoomNumber = "N/A"

// A street address. Used both for the recipient master record and for the
// per-stop snapshot inside a route itinerary.
type Address struct {
	Street     string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zipcode    string `json:"zipcode"`
	RoomNumber string `json:"room_number,omitempty"`
}

// A delivery recipient from the roster. Demand is the quantity this
// recipient receives per stop; a route's itinerary snapshots its own copy.
type Recipient struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Comments  string  `json:"comments,omitempty"`
	Location  Address `json:"location"`
	Demand    int     `json:"demand"`
}

func (r Recipient) FullName() string {
	return r.FirstName + " " + r.LastName
}
