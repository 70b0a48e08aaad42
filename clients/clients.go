/*
Package clients derives the client roster from service records.

PURPOSE:
  The hosting application has no client registry of its own; clients are
  derived at load time from service records. The first service record per
  unique contact email wins and seeds the client's identity; later
  records with the same email never create a second client, but remain
  visible through the service-history join.

SEE ALSO:
  - generic/filter.go: The pipeline used by client list views
*/
package clients

import (
	"fmt"
	"strings"

	"github.com/warp/admin-core/generic"
)

type ClientID string

type ClientStatus string

const (
	StatusActive   ClientStatus = "Active"
	StatusInactive ClientStatus = "Inactive"
)

// Client is derived, never authored directly.
type Client struct {
	ID           ClientID
	Name         string
	Organization string
	Email        string
	Phone        string
	FirstSeen    generic.Date
	Status       ClientStatus
}

// ServiceRecord is the raw input the derivation consumes.
type ServiceRecord struct {
	ClientName   string
	Organization string
	Email        string
	Phone        string
	StartDate    generic.Date
	Description  string
}

// ClientDocument is purely descriptive; no computation touches it.
type ClientDocument struct {
	ID         string
	ClientID   ClientID
	Name       string
	Type       string
	URL        string
	Size       string
	UploadDate generic.Date
}

// =============================================================================
// DERIVATION
// =============================================================================

// FromServices derives the client roster in one pass over the service
// records in their original order. First occurrence per unique email
// wins; subsequent occurrences are ignored for identity purposes.
func FromServices(services []ServiceRecord) []Client {
	seen := make(map[string]bool)
	var out []Client
	for _, svc := range services {
		email := normalizeEmail(svc.Email)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		out = append(out, Client{
			ID:           ClientID(fmt.Sprintf("client-%d", len(out)+1)),
			Name:         svc.ClientName,
			Organization: svc.Organization,
			Email:        svc.Email,
			Phone:        svc.Phone,
			FirstSeen:    svc.StartDate,
			Status:       StatusActive,
		})
	}
	return out
}

// ServiceHistory returns every service record for a contact email, in
// original order. Records beyond the first still participate here even
// though they never mint a new client.
func ServiceHistory(services []ServiceRecord, email string) []ServiceRecord {
	want := normalizeEmail(email)
	var out []ServiceRecord
	for _, svc := range services {
		if normalizeEmail(svc.Email) == want {
			out = append(out, svc)
		}
	}
	return out
}

// DocumentsFor returns the documents attached to a client, in original order.
func DocumentsFor(docs []ClientDocument, id ClientID) []ClientDocument {
	var out []ClientDocument
	for _, doc := range docs {
		if doc.ClientID == id {
			out = append(out, doc)
		}
	}
	return out
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
