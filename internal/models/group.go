package models

// DefaultCurrency is assigned to groups created without an explicit currency.
const DefaultCurrency = "ARS"

// ParticipantID identifies a participant inside one group.
// Two IDs are the same participant iff they are equal.
type ParticipantID string

// String returns the participant name.
func (p ParticipantID) String() string {
	return string(p)
}

// Group represents a set of participants who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Title is the display name of the group (e.g., "Trip to Bariloche").
	Title string

	// Currency is the ISO-4217 style code the group keeps its books in.
	// It is informational only; amounts are never converted.
	Currency string

	// Participants is the roster, in order of first appearance.
	Participants []ParticipantID

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Settlement is the cached settlement, nil until one has been computed.
	Settlement *CachedSettlement
}

// HasParticipant reports whether p is on the group's roster.
func (g *Group) HasParticipant(p ParticipantID) bool {
	for _, member := range g.Participants {
		if member == p {
			return true
		}
	}
	return false
}

// ParticipantIDs converts plain names into participant IDs, keeping order.
func ParticipantIDs(names []string) []ParticipantID {
	ids := make([]ParticipantID, len(names))
	for i, name := range names {
		ids[i] = ParticipantID(name)
	}
	return ids
}

// Names converts participant IDs back into plain names, keeping order.
func Names(ids []ParticipantID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}
