package domain

// GuestUserID is the identity used when nobody is signed in
const GuestUserID = "guest"

// UserProfile is the signed-in player.
// TotalPoints is a snapshot taken at sign-in; the ledger holds the live balance.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	TotalPoints int    `json:"totalPoints"`
}
