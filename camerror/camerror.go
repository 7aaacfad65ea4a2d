// Package camerror defines the sentinel errors the core wraps around
// its two fatal error classes: contract violations, raised at
// construction/registration, and integration violations, raised when a
// host collaborator fails a capability negotiation. Transient failures
// (a bad raycast, a NaN hit point) never reach this package; they're
// swallowed and logged where they occur.
package camerror

import "errors"

// ErrContractViolation is wrapped by every construction/registration
// failure: a malformed mode, an empty zoom step list, an unknown mode
// id passed to a lookup that requires one to exist.
var ErrContractViolation = errors.New("camcore: contract violation")

// ErrIntegrationViolation is wrapped when a host collaborator does not
// uphold a capability the pipeline needs mid-tick, such as a player
// model that cannot be hidden/shown on mode switch.
var ErrIntegrationViolation = errors.New("camcore: integration violation")

// ContractViolation wraps msg as an ErrContractViolation.
func ContractViolation(msg string) error {
	return errorsJoinMsg(ErrContractViolation, msg)
}

// IntegrationViolation wraps msg as an ErrIntegrationViolation.
func IntegrationViolation(msg string) error {
	return errorsJoinMsg(ErrIntegrationViolation, msg)
}

func errorsJoinMsg(sentinel error, msg string) error {
	return &wrapped{sentinel: sentinel, msg: msg}
}

type wrapped struct {
	sentinel error
	msg      string
}

func (w *wrapped) Error() string { return w.sentinel.Error() + ": " + w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }
