package entities

// RequestStatus is the lifecycle state stored on quotes and appointments.
//
// Documents are created as pending and are only ever deleted afterwards;
// there is no update operation.
type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
)

// Collection names in the document store.
const (
	CollectionQuotes       = "quotes"
	CollectionAppointments = "appointments"
)

// IsKnownCollection reports whether name is one of the collections the app reads/writes.
func IsKnownCollection(name string) bool {
	return name == CollectionQuotes || name == CollectionAppointments
}
