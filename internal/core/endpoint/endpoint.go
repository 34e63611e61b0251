// Package endpoint is the static table of backend operations: the relative
// path, HTTP method and the human context used in failure messages.
package endpoint

import (
	"net/http"
	"strconv"
)

// Name identifies a backend operation.
type Name string

const (
	Login                Name = "login"
	Signup               Name = "signup"
	Logout               Name = "logout"
	ListSwitch           Name = "list_switch"
	ListReservation      Name = "list_reservation"
	ListUser             Name = "list_user"
	ListPort             Name = "list_port"
	Reserve              Name = "reserve"
	Release              Name = "release"
	Connect              Name = "connect"
	Disconnect           Name = "disconnect"
	ShareTopology        Name = "share_topology"
	ListSharedTopologies Name = "list_shared_topologies"
	UnshareTopology      Name = "unshare_topology"
)

// Spec describes one registered operation.
type Spec struct {
	Path   string
	Method string
}

var registry = map[Name]Spec{
	Login:                {Path: "login/", Method: http.MethodPost},
	Signup:               {Path: "signup/", Method: http.MethodPost},
	Logout:               {Path: "logout/", Method: http.MethodGet},
	ListSwitch:           {Path: "list_switch/", Method: http.MethodGet},
	ListReservation:      {Path: "list_reservation/", Method: http.MethodGet},
	ListUser:             {Path: "list_user/", Method: http.MethodGet},
	ListPort:             {Path: "list_port/", Method: http.MethodGet},
	Reserve:              {Path: "reserve/", Method: http.MethodPost},
	Release:              {Path: "release/", Method: http.MethodPost},
	Connect:              {Path: "connect/", Method: http.MethodPost},
	Disconnect:           {Path: "disconnect/", Method: http.MethodPost},
	ShareTopology:        {Path: "share_topology/", Method: http.MethodPost},
	ListSharedTopologies: {Path: "list_shared_topologies/", Method: http.MethodGet},
	UnshareTopology:      {Path: "unshare_topology/", Method: http.MethodDelete},
}

// Lookup returns the spec registered for name.
func Lookup(name Name) (Spec, bool) {
	s, ok := registry[name]
	return s, ok
}

// All returns a copy of the registry.
func All() map[Name]Spec {
	out := make(map[Name]Spec, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

// Path returns the relative path for name, or "" when unknown.
func Path(name Name) string {
	return registry[name].Path
}

// PathWithID appends an id segment the way the backend expects it,
// e.g. list_port/ + 3 -> list_port/3/.
func PathWithID(name Name, id int) string {
	return Path(name) + strconv.Itoa(id) + "/"
}
