/*
lifecycle.go - Leave request state machine

PURPOSE:
  A request is created pending and decided exactly once:

      pending -> approved
      pending -> rejected

  Both outcomes are terminal. Any attempt to decide a request that has
  already reached a terminal state fails with InvalidTransition; the
  request is left untouched. The approver identity and decision date are
  recorded at the moment of the decision.

  The transition functions are pure: they return a decided copy and the
  history row to append, never mutating their input. The Service applies
  both through a single atomic store write.
*/
package leave

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/warp/admin-core/generic"
)

// =============================================================================
// PURE TRANSITIONS
// =============================================================================

// Approve returns an approved copy of r. Fails with InvalidTransition
// unless r is pending.
func Approve(r LeaveRequest, approver string) (LeaveRequest, error) {
	return decide(r, StatusApproved, approver)
}

// Reject returns a rejected copy of r. Fails with InvalidTransition
// unless r is pending.
func Reject(r LeaveRequest, approver string) (LeaveRequest, error) {
	return decide(r, StatusRejected, approver)
}

// The decision date lives on the history row, see ToHistory.
func decide(r LeaveRequest, to Status, approver string) (LeaveRequest, error) {
	if r.Status != StatusPending {
		return r, &generic.TransitionError{
			Entity: "leave request " + string(r.ID),
			From:   string(r.Status),
			To:     string(to),
		}
	}
	r.Status = to
	r.ApprovedBy = approver
	return r, nil
}

// ToHistory converts a decided request into its history row, stamping the
// decision date and deriving the year from the start date.
func ToHistory(r LeaveRequest, decidedAt generic.Date) (LeaveHistory, error) {
	if !r.Status.Terminal() {
		return LeaveHistory{}, &generic.TransitionError{
			Entity: "leave request " + string(r.ID),
			From:   string(r.Status),
			To:     "history",
		}
	}
	return LeaveHistory{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Department:    r.Department,
		LeaveType:     r.LeaveType,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Days:          r.Days,
		Reason:        r.Reason,
		Status:        r.Status,
		SubmittedDate: r.SubmittedDate,
		ApprovedBy:    r.ApprovedBy,
		ApprovedDate:  decidedAt,
		Year:          r.StartDate.Year(),
	}, nil
}

// =============================================================================
// STORE INTERFACE - implemented by store.Memory
// =============================================================================

type Store interface {
	// GetRequest returns the request or NotFound.
	GetRequest(ctx context.Context, id RequestID) (LeaveRequest, error)

	// PutRequest inserts a new request.
	PutRequest(ctx context.Context, r LeaveRequest) error

	// ApplyDecision replaces the request and appends the history row in
	// one atomic write: both applied or neither.
	ApplyDecision(ctx context.Context, r LeaveRequest, h LeaveHistory) error

	ListRequests(ctx context.Context) ([]LeaveRequest, error)
	ListHistory(ctx context.Context) ([]LeaveHistory, error)
}

// =============================================================================
// SERVICE - Orchestrates decisions against the store
// =============================================================================

type Service struct {
	Store Store
	Log   *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{Store: store, Log: log}
}

// Submit validates and files a new pending request.
func (s *Service) Submit(ctx context.Context, in NewRequest) (LeaveRequest, error) {
	r, err := in.Build()
	if err != nil {
		return LeaveRequest{}, err
	}
	if err := s.Store.PutRequest(ctx, r); err != nil {
		return LeaveRequest{}, err
	}
	s.Log.WithFields(logrus.Fields{
		"request":  r.ID,
		"employee": r.EmployeeID,
		"type":     r.LeaveType,
		"days":     r.Days,
	}).Info("leave request submitted")
	return r, nil
}

// Approve decides a pending request. The request update and the history
// append land in one atomic store write.
func (s *Service) Approve(ctx context.Context, id RequestID, approver string) (LeaveRequest, error) {
	return s.decide(ctx, id, approver, StatusApproved)
}

// Reject decides a pending request.
func (s *Service) Reject(ctx context.Context, id RequestID, approver string) (LeaveRequest, error) {
	return s.decide(ctx, id, approver, StatusRejected)
}

func (s *Service) decide(ctx context.Context, id RequestID, approver string, to Status) (LeaveRequest, error) {
	r, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}

	now := generic.Today()
	var decided LeaveRequest
	if to == StatusApproved {
		decided, err = Approve(r, approver)
	} else {
		decided, err = Reject(r, approver)
	}
	if err != nil {
		s.Log.WithFields(logrus.Fields{
			"request": id,
			"status":  r.Status,
			"to":      to,
		}).Warn("decision refused for non-pending request")
		return LeaveRequest{}, err
	}

	h, err := ToHistory(decided, now)
	if err != nil {
		return LeaveRequest{}, err
	}
	if err := s.Store.ApplyDecision(ctx, decided, h); err != nil {
		return LeaveRequest{}, err
	}

	s.Log.WithFields(logrus.Fields{
		"request":  id,
		"status":   decided.Status,
		"approver": approver,
	}).Info("leave request decided")
	return decided, nil
}
