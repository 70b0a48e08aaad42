/*
Package store provides the in-memory entity store.

PURPOSE:
  Memory owns the canonical collections (employees, clients, leave
  requests/history/policies, payroll records, manual payments) on behalf
  of the hosting application. Collections keep insertion order; the
  filter pipeline's tie-breaking contract depends on it.

OWNERSHIP & MUTATION:
  Reads copy out; callers can never alias internal state. Writes go
  through validated single operations that are atomic from the caller's
  perspective: a decision replaces the request and appends the history
  row together or not at all; a generation batch inserts every record or
  none. WithTx composes multiple writes with snapshot/rollback.

CONCURRENCY:
  The engine is single-threaded by design, but the store still carries a
  mutex so a hosting application with UI event re-entrancy cannot
  corrupt the collections.

SEE ALSO:
  - leave/lifecycle.go: the Store interface this implements
  - payroll/generate.go: the Store interface this implements
*/
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/warp/admin-core/clients"
	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
	"github.com/warp/admin-core/leave"
	"github.com/warp/admin-core/payroll"
)

type Memory struct {
	mu sync.RWMutex

	employees []hr.Employee
	services  []clients.ServiceRecord
	clientSet []clients.Client
	documents []clients.ClientDocument

	requests []leave.LeaveRequest
	history  []leave.LeaveHistory
	policies []leave.LeavePolicy

	records  []payroll.PayrollRecord
	payments []payroll.ManualPayment

	log *logrus.Logger
}

func NewMemory(log *logrus.Logger) *Memory {
	if log == nil {
		log = logrus.New()
	}
	return &Memory{log: log}
}

// Interface conformance.
var (
	_ leave.Store              = (*Memory)(nil)
	_ payroll.Store            = (*Memory)(nil)
	_ payroll.EmployeeResolver = (*Memory)(nil)
)

// =============================================================================
// EMPLOYEES
// =============================================================================

func (m *Memory) PutEmployee(_ context.Context, emp hr.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.employees {
		if existing.ID == emp.ID {
			return fmt.Errorf("%w: employee %s already exists", generic.ErrInvalidState, emp.ID)
		}
	}
	m.employees = append(m.employees, emp)
	return nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]hr.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.employees), nil
}

func (m *Memory) GetEmployee(_ context.Context, id hr.EmployeeID) (hr.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, emp := range m.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return hr.Employee{}, &generic.NotFoundError{Entity: "employee", ID: string(id)}
}

func (m *Memory) EmployeeExists(id hr.EmployeeID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, emp := range m.employees {
		if emp.ID == id {
			return true
		}
	}
	return false
}

// =============================================================================
// CLIENTS - derived from service records at load time
// =============================================================================

// SetServiceRecords replaces the service collection and re-derives the
// client roster (first-seen-wins per contact email).
func (m *Memory) SetServiceRecords(_ context.Context, services []clients.ServiceRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = copySlice(services)
	m.clientSet = clients.FromServices(m.services)
	m.log.WithFields(logrus.Fields{
		"services": len(m.services),
		"clients":  len(m.clientSet),
	}).Debug("client roster derived")
}

func (m *Memory) ListClients(_ context.Context) ([]clients.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.clientSet), nil
}

func (m *Memory) ListServiceRecords(_ context.Context) ([]clients.ServiceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.services), nil
}

func (m *Memory) PutDocument(_ context.Context, doc clients.ClientDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = append(m.documents, doc)
	return nil
}

func (m *Memory) ListDocuments(_ context.Context) ([]clients.ClientDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.documents), nil
}

// =============================================================================
// LEAVE
// =============================================================================

func (m *Memory) PutRequest(_ context.Context, r leave.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.requests {
		if existing.ID == r.ID {
			return fmt.Errorf("%w: leave request %s already exists", generic.ErrInvalidState, r.ID)
		}
	}
	m.requests = append(m.requests, r)
	return nil
}

func (m *Memory) GetRequest(_ context.Context, id leave.RequestID) (leave.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, &generic.NotFoundError{Entity: "leave request", ID: string(id)}
}

// ApplyDecision replaces the decided request and appends its history row
// in one locked write. If the request is missing, nothing is applied.
func (m *Memory) ApplyDecision(_ context.Context, r leave.LeaveRequest, h leave.LeaveHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.requests {
		if existing.ID == r.ID {
			m.requests[i] = r
			m.history = append(m.history, h)
			return nil
		}
	}
	return &generic.NotFoundError{Entity: "leave request", ID: string(r.ID)}
}

func (m *Memory) ListRequests(_ context.Context) ([]leave.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.requests), nil
}

func (m *Memory) ListHistory(_ context.Context) ([]leave.LeaveHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.history), nil
}

// PutHistory seeds a history row directly (fixtures, imports).
func (m *Memory) PutHistory(_ context.Context, h leave.LeaveHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, h)
	return nil
}

// SavePolicy inserts or replaces a policy, enforcing the single-default
// invariant before anything changes.
func (m *Memory) SavePolicy(_ context.Context, p leave.LeavePolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := leave.ValidatePolicyWrite(m.policies, p); err != nil {
		return err
	}
	for i, existing := range m.policies {
		if existing.ID == p.ID {
			m.policies[i] = p
			return nil
		}
	}
	m.policies = append(m.policies, p)
	return nil
}

func (m *Memory) ListPolicies(_ context.Context) ([]leave.LeavePolicy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.policies), nil
}

// AddLeaveType appends a validated leave type to a policy.
func (m *Memory) AddLeaveType(_ context.Context, policyID leave.PolicyID, lt leave.LeaveType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.policies {
		if p.ID == policyID {
			m.policies[i].LeaveTypes = append(copySlice(p.LeaveTypes), lt)
			return nil
		}
	}
	return &generic.NotFoundError{Entity: "leave policy", ID: string(policyID)}
}

// =============================================================================
// PAYROLL
// =============================================================================

func (m *Memory) ListRecords(_ context.Context) ([]payroll.PayrollRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.records), nil
}

// PutRecords inserts the batch atomically. A duplicate (employee, month)
// pair anywhere in the batch rejects the whole batch.
func (m *Memory) PutRecords(_ context.Context, records []payroll.PayrollRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		if m.hasRecordLocked(r.EmployeeID, r.Month) {
			return fmt.Errorf("%w: record exists for %s in %s", generic.ErrInvalidState, r.EmployeeID, r.Month)
		}
	}
	m.records = append(m.records, records...)
	return nil
}

func (m *Memory) SaveRecord(_ context.Context, r payroll.PayrollRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.records {
		if existing.ID == r.ID {
			m.records[i] = r
			return nil
		}
	}
	m.records = append(m.records, r)
	return nil
}

func (m *Memory) hasRecordLocked(id hr.EmployeeID, month generic.MonthKey) bool {
	for _, r := range m.records {
		if r.EmployeeID == id && r.Month == month {
			return true
		}
	}
	return false
}

func (m *Memory) ListPayments(_ context.Context) ([]payroll.ManualPayment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.payments), nil
}

func (m *Memory) PutPayment(_ context.Context, p payroll.ManualPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.payments {
		if existing.ID == p.ID {
			m.payments[i] = p
			return nil
		}
	}
	m.payments = append(m.payments, p)
	return nil
}

func (m *Memory) DeletePayment(_ context.Context, id payroll.PaymentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.payments {
		if existing.ID == id {
			m.payments = append(m.payments[:i:i], m.payments[i+1:]...)
			return nil
		}
	}
	return &generic.NotFoundError{Entity: "manual payment", ID: string(id)}
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
