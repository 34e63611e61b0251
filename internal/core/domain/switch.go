package domain

import "time"

// Port statuses reported by the backend.
const (
	PortUp   = "UP"
	PortDown = "DOWN"
)

// Switch is a lab switch that can be reserved.
type Switch struct {
	ID               int    `json:"id"               yaml:"id"`
	ManagementIP     string `json:"mngt_IP"          yaml:"management_ip"`
	Model            string `json:"model"            yaml:"model"`
	Console          string `json:"console"          yaml:"console"`
	PartNumber       string `json:"part_number"      yaml:"part_number"`
	HardwareRevision string `json:"hardware_revision" yaml:"hardware_revision"`
	SerialNumber     string `json:"serial_number"    yaml:"serial_number"`
}

// Port is a switch port wired to a backbone port. Two ports sharing an SVLAN
// are connected.
type Port struct {
	ID           int    `json:"id"            yaml:"id"`
	Switch       int    `json:"switch"        yaml:"switch"`
	PortSwitch   string `json:"port_switch"   yaml:"port_switch"`
	Backbone     string `json:"backbone"      yaml:"backbone"`
	PortBackbone string `json:"port_backbone" yaml:"port_backbone"`
	SVLAN        *int   `json:"svlan"         yaml:"svlan,omitempty"`
	Status       string `json:"status"        yaml:"status"`
}

// Connected reports whether the port currently carries an SVLAN.
func (p Port) Connected() bool {
	return p.SVLAN != nil
}

// TopologyShare grants another user a view of the owner's topology.
type TopologyShare struct {
	ID             int       `json:"id"                        yaml:"id"`
	Owner          int       `json:"owner"                     yaml:"owner"`
	Target         int       `json:"target"                    yaml:"target"`
	OwnerUsername  string    `json:"owner_username,omitempty"  yaml:"owner_username,omitempty"`
	TargetUsername string    `json:"target_username,omitempty" yaml:"target_username,omitempty"`
	CreatedAt      time.Time `json:"created_at"                yaml:"created_at"`
}
