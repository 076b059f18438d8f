package enums

import "fmt"

// ItemStatus represents the moderation lifecycle state of a listing.
// Deletion is a removal, not a status.
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusRejected ItemStatus = "rejected"
)

var validItemStatuses = []ItemStatus{
	ItemStatusPending,
	ItemStatusApproved,
	ItemStatusRejected,
}

// String implements fmt.Stringer.
func (s ItemStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ItemStatus.
func (s ItemStatus) IsValid() bool {
	for _, candidate := range validItemStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemStatus converts raw input into an ItemStatus.
func ParseItemStatus(value string) (ItemStatus, error) {
	for _, candidate := range validItemStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item status %q", value)
}

// IsModerationTarget reports whether the status is an accepted target of the
// admin transition endpoint. The transition itself applies the target
// unconditionally regardless of the item's current status.
func (s ItemStatus) IsModerationTarget() bool {
	return s == ItemStatusApproved || s == ItemStatusRejected
}
