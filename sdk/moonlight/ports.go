package moonlight

import (
	"github.com/leandrodaf/moonlight/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// ListPorts returns the MIDI output ports the host currently exposes.
func ListPorts() []contracts.PortInfo {
	var ports []contracts.PortInfo
	for _, out := range gomidi.GetOutPorts() {
		ports = append(ports, contracts.PortInfo{Number: out.Number(), Name: out.String()})
	}
	return ports
}
