package casecore

// ResolveListingNumber keeps the existing listing number unless the incoming
// value is a real assignment. Zero is the upstream placeholder for "not listed"
// and must never erase a number that was assigned before.
func ResolveListingNumber(existing *int, incoming int) *int {
	if incoming > 0 {
		resolved := incoming
		return &resolved
	}

	if existing == nil {
		return nil
	}

	resolved := *existing
	return &resolved
}

// NextListingNumber returns the next free listing number across the given offences.
func NextListingNumber(offences []Offence) int {
	highest := 0

	for _, offence := range offences {
		if offence.ListingNumber != nil && *offence.ListingNumber > highest {
			highest = *offence.ListingNumber
		}
	}

	return highest + 1
}
