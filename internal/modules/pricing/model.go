// README: Delivery rate definition per item category.
package pricing

type Rate struct {
	ItemCategoryID string
	BaseFare       int64
	PerKm          int64
	Currency       string
}

// DefaultRate applies when an item category has no rate row.
var DefaultRate = Rate{
	BaseFare: 150000, // ₦1,500.00 in kobo
	PerKm:    20000,  // ₦200.00 per km
	Currency: "NGN",
}

type QuoteRequest struct {
	PickupAddress  string
	DropoffAddress string
	ItemCategoryID string
}

// Quote carries the price split the booking creation invariant checks:
// Total is always Base + Addons.
type Quote struct {
	Base         int64
	Addons       int64
	Total        int64
	Currency     string
	DistanceKm   float64
	DurationMins int
}
