package constant

// Request status lifecycle: pending is the initial state, the owner
// moves a request to approved, rejected or completed.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusCompleted = "completed"
)

// ValidStatusUpdates are the statuses an owner may set on a request.
// Pending is not a legal target, it only ever exists as the initial state.
var ValidStatusUpdates = map[string]bool{
	RequestStatusApproved:  true,
	RequestStatusRejected:  true,
	RequestStatusCompleted: true,
}
