package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when input fails a local precondition. No
	// remote call has been made when it is returned.
	ErrValidation = errors.New("invalid campaign")
	ErrNotFound   = errors.New("resource not found")

	// ErrQuotaExceeded is returned by a store when charging a vault file
	// would push the subscription past its quota.
	ErrQuotaExceeded = errors.New("vault quota exceeded")
)

// BeneficiaryConflictError is returned when exactly one candidate
// beneficiary is already active in another campaign.
type BeneficiaryConflictError struct {
	Conflict BeneficiaryConflict
}

func (e *BeneficiaryConflictError) Error() string {
	return fmt.Sprintf("beneficiary %s is already in campaign %q",
		e.Conflict.BeneficiaryName, e.Conflict.CampaignTitle)
}

// BeneficiaryConflictsError is returned when several candidate
// beneficiaries are already active in other campaigns.
type BeneficiaryConflictsError struct {
	Conflicts []BeneficiaryConflict
}

func (e *BeneficiaryConflictsError) Error() string {
	names := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		names = append(names, c.BeneficiaryName)
	}
	return "beneficiaries already in other campaigns: " + strings.Join(names, ", ")
}

// UploadError is a failed file upload. The whole creation must be retried
// by the user.
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// QueryError is a failed remote read. Reads may be retried by calling the
// same operation again.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// BackendError wraps a remote failure that has no better classification.
// Its message is the remote message unchanged.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Retryable reports whether err belongs to the class of failures a caller
// may retry by invoking the same operation again.
func Retryable(err error) bool {
	var q *QueryError
	return errors.As(err, &q)
}

// Classify returns err unchanged when it already belongs to the domain
// taxonomy and wraps it in a BackendError otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var (
		conflict  *BeneficiaryConflictError
		conflicts *BeneficiaryConflictsError
		upload    *UploadError
		query     *QueryError
		backend   *BackendError
		vault     *VaultError
		partial   *IncompleteCreationError
	)
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound),
		errors.As(err, &conflict), errors.As(err, &conflicts),
		errors.As(err, &upload), errors.As(err, &query),
		errors.As(err, &backend), errors.As(err, &vault),
		errors.As(err, &partial):
		return err
	}
	return &BackendError{Err: err}
}
