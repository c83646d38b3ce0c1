package arp

import "fmt"

// HardwareType identifies the network link layer protocol of a Payload.
// Grounded on the teacher's arp.Frame.Hardware field.
type HardwareType uint16

// HardwareTypeEthernet is the only hardware type this stack constructs.
const HardwareTypeEthernet HardwareType = 1

// Operation is the ARP header operation field: request or reply.
// Grounded on arp/definitions.go's Operation type in the teacher.
type Operation uint16

const (
	OpRequest Operation = 1
	OpReply   Operation = 2
)

func (op Operation) String() string {
	switch op {
	case OpRequest:
		return "request"
	case OpReply:
		return "reply"
	default:
		return fmt.Sprintf("Operation(%d)", uint16(op))
	}
}
