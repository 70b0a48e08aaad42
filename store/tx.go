/*
tx.go - Snapshot/rollback composition of writes

PURPOSE:
  WithTx lets a caller compose several writes into one all-or-nothing
  unit: the collections are snapshotted, fn runs against an unlocked
  view, and any error restores the snapshot. Single-operation writes do
  not need this; it exists for seed loading and multi-entity imports.
*/
package store

import (
	"context"
	"fmt"

	"github.com/warp/admin-core/clients"
	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
	"github.com/warp/admin-core/leave"
	"github.com/warp/admin-core/payroll"
)

type snapshot struct {
	employees []hr.Employee
	services  []clients.ServiceRecord
	clientSet []clients.Client
	documents []clients.ClientDocument
	requests  []leave.LeaveRequest
	history   []leave.LeaveHistory
	policies  []leave.LeavePolicy
	records   []payroll.PayrollRecord
	payments  []payroll.ManualPayment
}

func (m *Memory) snapshotLocked() snapshot {
	return snapshot{
		employees: copySlice(m.employees),
		services:  copySlice(m.services),
		clientSet: copySlice(m.clientSet),
		documents: copySlice(m.documents),
		requests:  copySlice(m.requests),
		history:   copySlice(m.history),
		policies:  copyPolicies(m.policies),
		records:   copySlice(m.records),
		payments:  copySlice(m.payments),
	}
}

func (m *Memory) restoreLocked(s snapshot) {
	m.employees = s.employees
	m.services = s.services
	m.clientSet = s.clientSet
	m.documents = s.documents
	m.requests = s.requests
	m.history = s.history
	m.policies = s.policies
	m.records = s.records
	m.payments = s.payments
}

// Policies hold a nested slice; a shallow element copy would alias it.
func copyPolicies(in []leave.LeavePolicy) []leave.LeavePolicy {
	out := make([]leave.LeavePolicy, len(in))
	for i, p := range in {
		p.LeaveTypes = copySlice(p.LeaveTypes)
		p.WorkingDays = copySlice(p.WorkingDays)
		p.Holidays = copySlice(p.Holidays)
		out[i] = p
	}
	return out
}

// Tx is the view fn writes through. Its methods mirror the Memory write
// API without taking the lock, which WithTx already holds.
type Tx struct {
	m *Memory
}

func (tx *Tx) PutEmployee(emp hr.Employee) error {
	tx.m.employees = append(tx.m.employees, emp)
	return nil
}

func (tx *Tx) PutRequest(r leave.LeaveRequest) error {
	tx.m.requests = append(tx.m.requests, r)
	return nil
}

func (tx *Tx) PutHistory(h leave.LeaveHistory) error {
	tx.m.history = append(tx.m.history, h)
	return nil
}

func (tx *Tx) SavePolicy(p leave.LeavePolicy) error {
	if err := leave.ValidatePolicyWrite(tx.m.policies, p); err != nil {
		return err
	}
	for i, existing := range tx.m.policies {
		if existing.ID == p.ID {
			tx.m.policies[i] = p
			return nil
		}
	}
	tx.m.policies = append(tx.m.policies, p)
	return nil
}

func (tx *Tx) PutRecord(r payroll.PayrollRecord) error {
	if tx.m.hasRecordLocked(r.EmployeeID, r.Month) {
		return fmt.Errorf("%w: record exists for %s in %s", generic.ErrInvalidState, r.EmployeeID, r.Month)
	}
	tx.m.records = append(tx.m.records, r)
	return nil
}

func (tx *Tx) PutPayment(p payroll.ManualPayment) error {
	tx.m.payments = append(tx.m.payments, p)
	return nil
}

// WithTx executes fn within a snapshot/rollback unit. If fn returns an
// error the store is restored and the error propagated.
func (m *Memory) WithTx(_ context.Context, fn func(tx *Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshotLocked()
	if err := fn(&Tx{m: m}); err != nil {
		m.restoreLocked(snap)
		return err
	}
	return nil
}
