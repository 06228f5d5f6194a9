package casecore

// PersonDetails holds the identity attributes of a person defendant.
type PersonDetails struct {
	FirstName               string     `json:"firstName"`
	LastName                string     `json:"lastName"`
	DateOfBirth             DateString `json:"dateOfBirth,omitempty"`
	NationalInsuranceNumber string     `json:"nationalInsuranceNumber,omitempty"`
}

// LegalEntityDetails holds the identity attributes of an organisation defendant.
type LegalEntityDetails struct {
	Name string `json:"name"`
}

// DefenceOrganisation is the defence firm associated with a defendant.
type DefenceOrganisation struct {
	LAAContractNumber string `json:"laaContractNumber"`
	Name              string `json:"name,omitempty"`
}

// Defendant is a party prosecuted on a case. Person and LegalEntity are mutually exclusive.
type Defendant struct {
	ID                          DefendantIDString       `json:"id"`
	MasterDefendantID           MasterDefendantIDString `json:"masterDefendantId,omitempty"`
	Person                      *PersonDetails          `json:"person,omitempty"`
	LegalEntity                 *LegalEntityDetails     `json:"legalEntity,omitempty"`
	ProceedingsConcluded        bool                    `json:"proceedingsConcluded"`
	Youth                       bool                    `json:"youth,omitempty"`
	CRONumber                   string                  `json:"croNumber,omitempty"`
	DriverNumber                string                  `json:"driverNumber,omitempty"`
	CustodialEstablishment      string                  `json:"custodialEstablishment,omitempty"`
	DefenceOrganisation         *DefenceOrganisation    `json:"defenceOrganisation,omitempty"`
	LockedByRepresentationOrder bool                    `json:"lockedByRepresentationOrder,omitempty"`
	HearingID                   HearingIDString         `json:"hearingId,omitempty"`
	Offences                    []Offence               `json:"offences,omitempty"`
}

// IsLegalEntity reports whether this defendant is an organisation rather than a person.
func (d Defendant) IsLegalEntity() bool {
	return d.LegalEntity != nil
}

// IsConcluded reports whether every offence of this defendant has concluded.
// A defendant without offences is never considered concluded.
func (d Defendant) IsConcluded() bool {
	if len(d.Offences) == 0 {
		return false
	}

	for _, offence := range d.Offences {
		if !offence.ProceedingsConcluded {
			return false
		}
	}

	return true
}

// OffenceIndex returns the position of the offence with the given ID, or -1.
func (d Defendant) OffenceIndex(offenceID OffenceIDString) int {
	for i, offence := range d.Offences {
		if offence.ID == offenceID {
			return i
		}
	}

	return -1
}

func (d Defendant) clone() Defendant {
	cloned := d

	if d.Person != nil {
		person := *d.Person
		cloned.Person = &person
	}

	if d.LegalEntity != nil {
		legalEntity := *d.LegalEntity
		cloned.LegalEntity = &legalEntity
	}

	if d.DefenceOrganisation != nil {
		organisation := *d.DefenceOrganisation
		cloned.DefenceOrganisation = &organisation
	}

	cloned.Offences = cloneOffences(d.Offences)

	return cloned
}

func cloneDefendants(defendants []Defendant) []Defendant {
	if defendants == nil {
		return nil
	}

	cloned := make([]Defendant, len(defendants))
	for i, defendant := range defendants {
		cloned[i] = defendant.clone()
	}

	return cloned
}
