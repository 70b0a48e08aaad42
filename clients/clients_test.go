package clients_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/admin-core/clients"
	"github.com/warp/admin-core/generic"
)

func sampleServices() []clients.ServiceRecord {
	return []clients.ServiceRecord{
		{ClientName: "Acme Corp", Organization: "Acme", Email: "contact@acme.com",
			Phone: "555-0101", StartDate: generic.MustDate("2024-01-10"), Description: "Payroll onboarding"},
		{ClientName: "Globex", Organization: "Globex Inc", Email: "info@globex.com",
			Phone: "555-0202", StartDate: generic.MustDate("2024-02-05"), Description: "Leave policy setup"},
		// Same contact as the first record, different spelling and name.
		{ClientName: "Acme Corporation", Organization: "Acme", Email: "  Contact@ACME.com ",
			Phone: "555-0199", StartDate: generic.MustDate("2024-03-20"), Description: "Quarterly audit"},
		{ClientName: "Initech", Organization: "Initech", Email: "hello@initech.com",
			Phone: "555-0303", StartDate: generic.MustDate("2024-04-01"), Description: "HR consulting"},
	}
}

func TestFromServices_FirstSeenWinsPerEmail(t *testing.T) {
	roster := clients.FromServices(sampleServices())

	require.Len(t, roster, 3)

	acme := roster[0]
	assert.Equal(t, clients.ClientID("client-1"), acme.ID)
	assert.Equal(t, "Acme Corp", acme.Name)
	assert.Equal(t, "555-0101", acme.Phone)
	assert.True(t, acme.FirstSeen.Equal(generic.MustDate("2024-01-10")))
	assert.Equal(t, clients.StatusActive, acme.Status)

	assert.Equal(t, clients.ClientID("client-2"), roster[1].ID)
	assert.Equal(t, "Globex", roster[1].Name)
	assert.Equal(t, clients.ClientID("client-3"), roster[2].ID)
	assert.Equal(t, "Initech", roster[2].Name)
}

func TestFromServices_BlankEmailNeverMintsAClient(t *testing.T) {
	roster := clients.FromServices([]clients.ServiceRecord{
		{ClientName: "Anonymous", Email: "   "},
		{ClientName: "Acme Corp", Email: "contact@acme.com"},
	})

	require.Len(t, roster, 1)
	assert.Equal(t, "Acme Corp", roster[0].Name)
}

func TestServiceHistory_JoinsAllRecordsForTheContact(t *testing.T) {
	history := clients.ServiceHistory(sampleServices(), "CONTACT@acme.com")

	require.Len(t, history, 2)
	assert.Equal(t, "Payroll onboarding", history[0].Description)
	assert.Equal(t, "Quarterly audit", history[1].Description)
}

func TestDocumentsFor_FiltersByClient(t *testing.T) {
	docs := []clients.ClientDocument{
		{ID: "d1", ClientID: "client-1", Name: "Contract.pdf"},
		{ID: "d2", ClientID: "client-2", Name: "NDA.pdf"},
		{ID: "d3", ClientID: "client-1", Name: "Invoice.pdf"},
	}

	got := clients.DocumentsFor(docs, "client-1")

	require.Len(t, got, 2)
	assert.Equal(t, "Contract.pdf", got[0].Name)
	assert.Equal(t, "Invoice.pdf", got[1].Name)

	assert.Empty(t, clients.DocumentsFor(docs, "client-9"))
}
