package messages

import (
	"fmt"

	"github.com/muurk/rpmlog/internal/bitfield"
)

// RPM trigger interrupts (rpm_trigger_fired)
var triggerInterrupts = map[uint32]string{
	0: "SPM Shutdown Handshake",
	1: "SPM Bringup Handshake",
}

// Request sets
var sets = map[uint32]string{
	0: "Active Set",
	1: "Sleep Set",
}

// Deferred action bits
var actions = map[uint]string{
	0: "Request",
	1: "Notification",
}

var servicingStates = []string{"idle", "pre_dispatch", "dispatch", "post_dispatch"}

var abortReasons = map[uint32]string{
	0: "version mismatch",
	1: "invalid parameters",
	2: "master not ready",
}

var svsReasons = []string{
	"idle",
	"speedup",
	"no speedup",
	"imminent processing",
	"schedule is full",
	"external vote",
}

func triggerInterruptName(id uint32) string {
	if name, ok := triggerInterrupts[id]; ok {
		return quote(name)
	}
	return quote(fmt.Sprintf("Unknown interrupt %d", id))
}

func setName(id uint32) string {
	if name, ok := sets[id]; ok {
		return quote(name)
	}
	return quote(fmt.Sprintf("Unknown set %d", id))
}

func actionNames(v uint32) string {
	return bitfield.Render("action", actions, uint64(v))
}

func svsReason(v uint32) string {
	if int(v) < len(svsReasons) {
		return svsReasons[v]
	}
	return fmt.Sprintf("unknown reason %d", v)
}

func quote(s string) string {
	return `"` + s + `"`
}
