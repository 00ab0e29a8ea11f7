package kafka

// Topics carry one JSON event per lifecycle change. Keys are chosen so a
// partition sees the events of one booking/traveler in order.
const (
	DefaultBookingTopic = "booking-events"
	DefaultPayoutTopic  = "payout-events"
)
