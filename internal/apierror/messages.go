package apierror

import "fmt"

const (
	MsgPassengerCountMissing = "Missing passenger count."
	MsgPassengerCountInvalid = "Invalid passenger count."
	MsgTooManyPassengers     = "Too many passengers."

	MsgJourneyTimeMissing = "Missing journey time."
	MsgTimeInvalidFormat  = "Invalid time format. Please use HH:MM."
	MsgHourOutOfRange     = "Hour must be between 0 and 23."
	MsgMinuteOutOfRange   = "Minute must be between 0 and 59."

	MsgStartStationInvalid = "Invalid start station."
	MsgEndStationInvalid   = "Invalid end station."
	MsgInvalidStationPair  = "Invalid start or end station."

	MsgTrainChoiceInvalid = "Invalid train choice."
)

// MsgPassengerNameMissing is reported when either name of passenger i is empty.
func MsgPassengerNameMissing(i int) string {
	return fmt.Sprintf("Missing name for passenger %d.", i)
}
