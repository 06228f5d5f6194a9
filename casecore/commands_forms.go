package casecore

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	CreateFormCommandType      = "CreateForm"
	RequestFormEditCommandType = "RequestFormEdit"
	UpdateFormDataCommandType  = "UpdateFormData"
	FinaliseFormCommandType    = "FinaliseForm"
)

// CreateFormCommand creates a form against the case.
type CreateFormCommand struct {
	CaseID     CaseIDString
	FormID     FormIDString
	FormType   FormType
	Defendants []FormDefendantRef
	OccurredAt time.Time
}

func (c CreateFormCommand) CommandType() string {
	return CreateFormCommandType
}

// CreateForm creates the form. Replaying creation of an existing form is
// recorded as ignored.
func (a *Aggregate) CreateForm(command CreateFormCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				CreateFormCommandType,
				fmt.Sprintf("case %s does not exist", command.CaseID),
				command.OccurredAt,
			),
			fmt.Errorf("creating form %s: case %s does not exist", command.FormID, command.CaseID),
		)
	}

	if a.state.HasForm(command.FormID) {
		return IgnoredBatch(BuildFormCreationIgnored(command.CaseID, command.FormID, command.OccurredAt))
	}

	return SuccessBatch(BuildFormCreated(
		command.CaseID,
		command.FormID,
		command.FormType,
		command.Defendants,
		command.OccurredAt,
	))
}

// RequestFormEditCommand asks for the editing lock on a form.
type RequestFormEditCommand struct {
	CaseID      CaseIDString
	FormID      FormIDString
	RequestedBy string
	ExtendBy    time.Duration
	OccurredAt  time.Time
}

func (c RequestFormEditCommand) CommandType() string {
	return RequestFormEditCommandType
}

// RequestFormEdit decides the lock request. Granted or denied, the outcome is
// recorded so every client observes the same lock state.
func (a *Aggregate) RequestFormEdit(command RequestFormEditCommand) BatchResult {
	form, ok := a.state.Forms[command.FormID]
	if !ok {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				RequestFormEditCommandType,
				fmt.Sprintf("form %s does not exist", command.FormID),
				command.OccurredAt,
			),
			fmt.Errorf("requesting edit of form %s: form does not exist", command.FormID),
		)
	}

	decision := a.lockPolicy.DecideLock(form, command.RequestedBy, command.OccurredAt, command.ExtendBy)

	return SuccessBatch(BuildFormLockStatusRecorded(
		command.CaseID,
		command.FormID,
		!decision.Granted,
		decision.HeldBy,
		command.RequestedBy,
		decision.ExpiresAt,
		command.OccurredAt,
	))
}

// UpdateFormDataCommand writes new data into a form.
type UpdateFormDataCommand struct {
	CaseID     CaseIDString
	FormID     FormIDString
	UpdatedBy  string
	Data       json.RawMessage
	OccurredAt time.Time
}

func (c UpdateFormDataCommand) CommandType() string {
	return UpdateFormDataCommandType
}

// UpdateFormData records the new data. Applying the update releases the lock,
// so the next edit request has to acquire it again.
func (a *Aggregate) UpdateFormData(command UpdateFormDataCommand) BatchResult {
	if !a.state.HasForm(command.FormID) {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				UpdateFormDataCommandType,
				fmt.Sprintf("form %s does not exist", command.FormID),
				command.OccurredAt,
			),
			fmt.Errorf("updating form %s: form does not exist", command.FormID),
		)
	}

	return SuccessBatch(BuildFormUpdated(
		command.CaseID,
		command.FormID,
		command.Data,
		command.UpdatedBy,
		command.OccurredAt,
	))
}

// FinaliseFormCommand finalises a form.
type FinaliseFormCommand struct {
	CaseID     CaseIDString
	FormID     FormIDString
	OccurredAt time.Time
}

func (c FinaliseFormCommand) CommandType() string {
	return FinaliseFormCommandType
}

// FinaliseForm finalises the form exactly once, snapshotting the case
// defendants. A missing case or form and a repeated finalisation all fail.
func (a *Aggregate) FinaliseForm(command FinaliseFormCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				FinaliseFormCommandType,
				fmt.Sprintf("case %s does not exist", command.CaseID),
				command.OccurredAt,
			),
			fmt.Errorf("finalising form %s: case %s does not exist", command.FormID, command.CaseID),
		)
	}

	form, ok := a.state.Forms[command.FormID]
	if !ok {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				FinaliseFormCommandType,
				fmt.Sprintf("form %s does not exist", command.FormID),
				command.OccurredAt,
			),
			fmt.Errorf("finalising form %s: form does not exist", command.FormID),
		)
	}

	if form.Finalised {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				FinaliseFormCommandType,
				fmt.Sprintf("form %s is already finalised", command.FormID),
				command.OccurredAt,
			),
			fmt.Errorf("finalising form %s: already finalised", command.FormID),
		)
	}

	return SuccessBatch(BuildFormFinalised(
		command.CaseID,
		command.FormID,
		cloneDefendants(a.state.Case.Defendants),
		command.OccurredAt,
	))
}
