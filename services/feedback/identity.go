package feedback

// Classification of the submitting identity
const (
	ClassCustomer  = "customer"
	ClassGuest     = "guest"
	ClassAnonymous = "anonymous"
)

// Identity is the resolved submitter. Key is empty for anonymous submissions,
// which are never eligibility-checked or recorded. Keys are tagged so a guest
// phone can never collide with a customer token.
type Identity struct {
	Class string
	Key   string
}

// ResolveIdentity classifies the submitter from the provided credentials.
// A token always wins over a guest phone; it never fails.
func ResolveIdentity(token, guestPhone string) Identity {
	if token != "" {
		return Identity{Class: ClassCustomer, Key: "customer:" + token}
	}
	if guestPhone != "" {
		return Identity{Class: ClassGuest, Key: "guest:" + guestPhone}
	}
	return Identity{Class: ClassAnonymous}
}
