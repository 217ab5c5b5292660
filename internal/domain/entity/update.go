package entity

// PartialUpdate carries the optionally-present fields an account owner may
// change. A nil field means "leave untouched", not "clear".
type PartialUpdate struct {
	FirstName       *string
	LastName        *string
	DefaultLocation *string
}

// SetDocument builds the field-name to new-value mapping for the fields that
// are actually present. Zero present fields yields an empty map, which the
// store layer treats as a no-op update.
func (u PartialUpdate) SetDocument() map[string]any {
	set := make(map[string]any)

	if u.FirstName != nil {
		set["firstName"] = *u.FirstName
	}
	if u.LastName != nil {
		set["lastName"] = *u.LastName
	}
	if u.DefaultLocation != nil {
		set["defaultLocation"] = *u.DefaultLocation
	}

	return set
}

// IsEmpty reports whether no field is present.
func (u PartialUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.DefaultLocation == nil
}
