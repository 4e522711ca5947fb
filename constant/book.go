package constant

// Availability modes for a book listing.
const (
	AvailabilityRent = "rent"
	AvailabilitySale = "sale"
	AvailabilityBoth = "both"
)

// FilterAll disables the availability-mode constraint in search.
const FilterAll = "all"
