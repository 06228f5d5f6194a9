package casecore

// Case is the root entity of a prosecution case.
type Case struct {
	ID                      CaseIDString `json:"id"`
	URN                     URNString    `json:"urn"`
	Status                  CaseStatus   `json:"status"`
	OriginatingOrganisation string       `json:"originatingOrganisation,omitempty"`
	CPSOrganisationCode     string       `json:"cpsOrganisationCode,omitempty"`
	CourtCentreID           string       `json:"courtCentreId,omitempty"`
	ConvictionDate          *DateString  `json:"convictionDate,omitempty"`
	CourtOrderOffences      []Offence    `json:"courtOrderOffences,omitempty"`
	Defendants              []Defendant  `json:"defendants,omitempty"`
}

// DefendantIndex returns the position of the defendant with the given ID, or -1.
func (c *Case) DefendantIndex(defendantID DefendantIDString) int {
	for i, defendant := range c.Defendants {
		if defendant.ID == defendantID {
			return i
		}
	}

	return -1
}

// HasDefendant reports whether a defendant with the given ID exists on the case.
func (c *Case) HasDefendant(defendantID DefendantIDString) bool {
	return c.DefendantIndex(defendantID) >= 0
}

func (c *Case) clone() *Case {
	if c == nil {
		return nil
	}

	cloned := *c

	if c.ConvictionDate != nil {
		convictionDate := *c.ConvictionDate
		cloned.ConvictionDate = &convictionDate
	}

	cloned.CourtOrderOffences = cloneOffences(c.CourtOrderOffences)
	cloned.Defendants = cloneDefendants(c.Defendants)

	return &cloned
}
