package datemath

// EventDateLayout is the only date format the ledger accepts for events.
const EventDateLayout = "2006-01-02"
