package contract

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// TicketMarketplaceABI is the subset of the ticket contract's ABI this
// service reads and encodes.
const TicketMarketplaceABI = `[
  {"type":"function","name":"getAllEvents","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"eventId","type":"uint256"},
     {"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},
     {"name":"eventLocation","type":"string"},
     {"name":"price","type":"uint256"},
     {"name":"availableTickets","type":"uint256"},
     {"name":"ticketIds","type":"uint256[]"}]}]},
  {"type":"function","name":"getTicketsForEvent","stateMutability":"view",
   "inputs":[{"name":"eventId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"ticketId","type":"uint256"},
     {"name":"eventId","type":"uint256"},
     {"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},
     {"name":"eventLocation","type":"string"},
     {"name":"currentOwner","type":"address"},
     {"name":"price","type":"uint256"},
     {"name":"isForSale","type":"bool"},
     {"name":"isForResale","type":"bool"},
     {"name":"isExpired","type":"bool"}]}]},
  {"type":"function","name":"getResaleTickets","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"ticketId","type":"uint256"},
     {"name":"eventId","type":"uint256"},
     {"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},
     {"name":"eventLocation","type":"string"},
     {"name":"currentOwner","type":"address"},
     {"name":"price","type":"uint256"},
     {"name":"isForSale","type":"bool"},
     {"name":"isForResale","type":"bool"},
     {"name":"isExpired","type":"bool"}]}]},
  {"type":"function","name":"getTicket","stateMutability":"view",
   "inputs":[{"name":"ticketId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple","components":[
     {"name":"ticketId","type":"uint256"},
     {"name":"eventId","type":"uint256"},
     {"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},
     {"name":"eventLocation","type":"string"},
     {"name":"currentOwner","type":"address"},
     {"name":"price","type":"uint256"},
     {"name":"isForSale","type":"bool"},
     {"name":"isForResale","type":"bool"},
     {"name":"isExpired","type":"bool"}]}]},
  {"type":"function","name":"ticketCount","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getResaleHistory","stateMutability":"view",
   "inputs":[{"name":"ticketId","type":"uint256"}],
   "outputs":[{"name":"","type":"address[]"}]},
  {"type":"function","name":"hasRole","stateMutability":"view",
   "inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"purchaseTicket","stateMutability":"payable",
   "inputs":[{"name":"eventId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"purchaseResaleTicket","stateMutability":"payable",
   "inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"resellTicket","stateMutability":"nonpayable",
   "inputs":[{"name":"ticketId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"cancelResale","stateMutability":"nonpayable",
   "inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"createEvent","stateMutability":"nonpayable",
   "inputs":[{"name":"eventName","type":"string"},{"name":"eventDate","type":"string"},
     {"name":"eventLocation","type":"string"},{"name":"price","type":"uint256"},
     {"name":"availableTickets","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"updateEvent","stateMutability":"nonpayable",
   "inputs":[{"name":"eventId","type":"uint256"},{"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},{"name":"eventLocation","type":"string"},
     {"name":"price","type":"uint256"},{"name":"availableTickets","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"createTicket","stateMutability":"nonpayable",
   "inputs":[{"name":"eventId","type":"uint256"},{"name":"eventName","type":"string"},
     {"name":"eventDate","type":"string"},{"name":"eventLocation","type":"string"},
     {"name":"price","type":"uint256"}],"outputs":[]}
]`

// Contract method names.
const (
	methodAllEvents            = "getAllEvents"
	methodTicketsForEvent      = "getTicketsForEvent"
	methodResaleTickets        = "getResaleTickets"
	methodTicket               = "getTicket"
	methodTicketCount          = "ticketCount"
	methodResaleHistory        = "getResaleHistory"
	methodHasRole              = "hasRole"
	methodPurchaseTicket       = "purchaseTicket"
	methodPurchaseResaleTicket = "purchaseResaleTicket"
	methodResellTicket         = "resellTicket"
	methodCancelResale         = "cancelResale"
	methodCreateEvent          = "createEvent"
	methodUpdateEvent          = "updateEvent"
	methodCreateTicket         = "createTicket"
)

var parsedABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(TicketMarketplaceABI))
	if err != nil {
		panic("marketplace/repository/contract: invalid ABI: " + err.Error())
	}
	return parsed
}

// Field names follow the ABI component names so the decoder can match them.

type eventTuple struct {
	EventId          *big.Int
	EventName        string
	EventDate        string
	EventLocation    string
	Price            *big.Int
	AvailableTickets *big.Int
	TicketIds        []*big.Int
}

type ticketTuple struct {
	TicketId      *big.Int
	EventId       *big.Int
	EventName     string
	EventDate     string
	EventLocation string
	CurrentOwner  common.Address
	Price         *big.Int
	IsForSale     bool
	IsForResale   bool
	IsExpired     bool
}
