package validation

// Field names shared by every form that ends in a ledger call.
const (
	FieldEventID          = "eventId"
	FieldTicketID         = "ticketId"
	FieldEventName        = "eventName"
	FieldEventDate        = "eventDate"
	FieldEventLocation    = "eventLocation"
	FieldPriceEth         = "priceEth"
	FieldAvailableTickets = "availableTickets"
	FieldWallet           = "wallet"
)

// Rule is a validator tag plus the message shown when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Rules is the single table every form is checked against before any
// external call is issued.
var Rules = map[string]Rule{
	FieldEventID:          {Tag: "required,positive_int", Message: "Please provide a valid event ID."},
	FieldTicketID:         {Tag: "required,positive_int", Message: "Please provide a valid ticket ID."},
	FieldEventName:        {Tag: "required,max=120", Message: "Event name cannot be empty."},
	FieldEventDate:        {Tag: "required,datetime=2006-01-02", Message: "Event date must be in YYYY-MM-DD format."},
	FieldEventLocation:    {Tag: "required,max=120", Message: "Event location cannot be empty."},
	FieldPriceEth:         {Tag: "required,eth_amount", Message: "Price must be a valid positive number of ETH."},
	FieldAvailableTickets: {Tag: "required,positive_int", Message: "Available tickets must be a valid positive number."},
	FieldWallet:           {Tag: "required,eth_addr", Message: "Wallet address must be a 0x-prefixed 20-byte hex address."},
}
