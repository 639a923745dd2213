package seed

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNetwork_Counts(t *testing.T) {
	n := Network()

	assert.Len(t, n.Hosts, 10)
	assert.Len(t, n.Shows, 10)
	assert.Len(t, n.Episodes, 5)
	assert.Len(t, n.Advertisers, 12)
}

func TestNetwork_ReferencesResolve(t *testing.T) {
	n := Network()

	hostNames := map[string]bool{}
	for _, h := range n.Hosts {
		assert.False(t, hostNames[h.Name], "duplicate host %s", h.Name)
		hostNames[h.Name] = true
	}

	showTitles := map[string]bool{}
	usedHosts := map[string]bool{}
	for _, s := range n.Shows {
		assert.True(t, hostNames[s.HostName], "show %q references unknown host %q", s.Input.Title, s.HostName)
		usedHosts[s.HostName] = true
		showTitles[s.Input.Title] = true
	}
	assert.Len(t, usedHosts, len(n.Hosts), "every host presents one show")

	for _, e := range n.Episodes {
		assert.True(t, showTitles[e.ShowTitle], "episode %q references unknown show %q", e.Input.Title, e.ShowTitle)
	}
}

func TestNetwork_PassesValidation(t *testing.T) {
	v := validator.New()
	n := Network()

	for _, h := range n.Hosts {
		assert.NoError(t, v.Struct(h), h.Name)
	}
	for _, a := range n.Advertisers {
		assert.NoError(t, v.Struct(a), a.CompanyName)
	}
	for _, s := range n.Shows {
		// host_id is assigned when the network is stored
		assert.NoError(t, v.StructExcept(s.Input, "HostID"), s.Input.Title)
	}
	for _, e := range n.Episodes {
		assert.NoError(t, v.StructExcept(e.Input, "ShowID"), e.Input.Title)
	}
}

func TestNetwork_FreshCopies(t *testing.T) {
	a := Network()
	b := Network()

	a.Hosts[0].Name = "changed"
	*a.Hosts[0].ImageURL = "changed"

	assert.Equal(t, "Ranveer Allahbadia", b.Hosts[0].Name)
	assert.NotEqual(t, "changed", *b.Hosts[0].ImageURL)
}
