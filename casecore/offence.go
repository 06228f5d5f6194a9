package casecore

// JudicialResult is a single result recorded against an offence at a hearing.
type JudicialResult struct {
	ID          string         `json:"id"`
	Label       string         `json:"label,omitempty"`
	Category    ResultCategory `json:"category"`
	OrderedDate DateString     `json:"orderedDate,omitempty"`
}

// ReportingRestriction is a restriction applicable to an offence, resolved from reference data.
type ReportingRestriction struct {
	Code  string `json:"code"`
	Label string `json:"label,omitempty"`
}

// LAAReference carries the raw legal-aid reference attached to an offence.
type LAAReference struct {
	ApplicationReference string     `json:"applicationReference"`
	StatusCode           string     `json:"statusCode"`
	StatusDescription    string     `json:"statusDescription,omitempty"`
	StatusDate           DateString `json:"statusDate,omitempty"`
}

// IndicatedPlea is a plea indication recorded against an offence before trial.
type IndicatedPlea struct {
	Value    string     `json:"value"`
	PleaDate DateString `json:"pleaDate,omitempty"`
}

// Offence is a charge recorded against a defendant.
type Offence struct {
	ID                    OffenceIDString        `json:"id"`
	Code                  string                 `json:"code,omitempty"`
	ListingNumber         *int                   `json:"listingNumber,omitempty"`
	ProceedingsConcluded  bool                   `json:"proceedingsConcluded"`
	JudicialResults       []JudicialResult       `json:"judicialResults,omitempty"`
	LAAReference          *LAAReference          `json:"laaReference,omitempty"`
	ConvictionDate        *DateString            `json:"convictionDate,omitempty"`
	ReportingRestrictions []ReportingRestriction `json:"reportingRestrictions,omitempty"`
	IndicatedPlea         *IndicatedPlea         `json:"indicatedPlea,omitempty"`
}

// HasFinalResult reports whether at least one judicial result is in the final category.
func (o Offence) HasFinalResult() bool {
	for _, result := range o.JudicialResults {
		if result.Category == ResultCategoryFinal {
			return true
		}
	}

	return false
}

func (o Offence) clone() Offence {
	cloned := o

	if o.ListingNumber != nil {
		listingNumber := *o.ListingNumber
		cloned.ListingNumber = &listingNumber
	}

	if o.JudicialResults != nil {
		cloned.JudicialResults = make([]JudicialResult, len(o.JudicialResults))
		copy(cloned.JudicialResults, o.JudicialResults)
	}

	if o.LAAReference != nil {
		reference := *o.LAAReference
		cloned.LAAReference = &reference
	}

	if o.ConvictionDate != nil {
		convictionDate := *o.ConvictionDate
		cloned.ConvictionDate = &convictionDate
	}

	if o.ReportingRestrictions != nil {
		cloned.ReportingRestrictions = make([]ReportingRestriction, len(o.ReportingRestrictions))
		copy(cloned.ReportingRestrictions, o.ReportingRestrictions)
	}

	if o.IndicatedPlea != nil {
		plea := *o.IndicatedPlea
		cloned.IndicatedPlea = &plea
	}

	return cloned
}

func cloneOffences(offences []Offence) []Offence {
	if offences == nil {
		return nil
	}

	cloned := make([]Offence, len(offences))
	for i, offence := range offences {
		cloned[i] = offence.clone()
	}

	return cloned
}
