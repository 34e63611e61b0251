package endpoint

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_PathsAndMethods(t *testing.T) {
	cases := map[Name]Spec{
		Login:                {"login/", http.MethodPost},
		Signup:               {"signup/", http.MethodPost},
		Logout:               {"logout/", http.MethodGet},
		ListSwitch:           {"list_switch/", http.MethodGet},
		ListReservation:      {"list_reservation/", http.MethodGet},
		ListUser:             {"list_user/", http.MethodGet},
		ListPort:             {"list_port/", http.MethodGet},
		Reserve:              {"reserve/", http.MethodPost},
		Release:              {"release/", http.MethodPost},
		Connect:              {"connect/", http.MethodPost},
		Disconnect:           {"disconnect/", http.MethodPost},
		ShareTopology:        {"share_topology/", http.MethodPost},
		ListSharedTopologies: {"list_shared_topologies/", http.MethodGet},
		UnshareTopology:      {"unshare_topology/", http.MethodDelete},
	}

	require.Len(t, All(), len(cases))
	for name, want := range cases {
		got, ok := Lookup(name)
		require.True(t, ok, "missing %s", name)
		assert.Equal(t, want, got, name)
		assert.False(t, strings.HasPrefix(got.Path, "/"), "%s must be relative", name)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	m := All()
	m[Login] = Spec{Path: "hijack/", Method: http.MethodGet}

	got, _ := Lookup(Login)
	assert.Equal(t, "login/", got.Path)
}

func TestPathWithID(t *testing.T) {
	assert.Equal(t, "list_port/3/", PathWithID(ListPort, 3))
	assert.Equal(t, "unshare_topology/12/", PathWithID(UnshareTopology, 12))
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup(Name("add_switch"))
	assert.False(t, ok)
	assert.Empty(t, Path(Name("add_switch")))
}
