package messages

import (
	"fmt"

	"github.com/muurk/rpmlog/internal/bitfield"
)

func rpmEntries() []Entry {
	return []Entry{
		fixed(0x00, "rpm_boot_started"),
		{Opcode: 0x01, Name: "rpm_boot_finished", MinWords: 1, Render: renderBootFinished},
		{Opcode: 0x02, Name: "rpm_driver_registered", MinWords: 2, Render: renderDriverRegistered},
		resourceOnly(0x03, "rpm_driver_deregistered"),
		{Opcode: 0x04, Name: "rpm_status_updating", MinWords: 2, Render: renderStatusUpdating},
		masterOnly(0x05, "rpm_message_int_received"),
		{Opcode: 0x06, Name: "rpm_servicing_master", MinWords: 4, Render: renderServicingMaster},
		{Opcode: 0x07, Name: "rpm_request_aborted", MinWords: 2, Render: renderRequestAborted},
		fixed(0x08, "rpm_reserved_field_warning"),
		{Opcode: 0x09, Name: "rpm_driver_dispatch", MinWords: 1, Render: renderDriverDispatch},
		rejected(0x0a, "rpm_driver_complete"),
		fixed(0x0b, "rpm_no_driver"),
		masterOnly(0x0c, "rpm_sending_message_int"),
		{Opcode: 0x0d, Name: "rpm_master_deferred", MinWords: 3, Render: renderMasterDeferred},
		masterOnly(0x0e, "rpm_master_deferral_complete"),
		{Opcode: 0x0f, Name: "rpm_trigger_fired", MinWords: 1, Render: renderTriggerFired},
		masterOnly(0x10, "rpm_timed_trigger_fired"),
		masterCore(0x11, "rpm_bringup_req"),
		masterCore(0x12, "rpm_shutdown_req"),
		masterCore(0x13, "rpm_bringup_ack"),
		masterCore(0x14, "rpm_shutdown_ack"),
		{Opcode: 0x15, Name: "rpm_master_set_transition", MinWords: 3, Render: renderMasterSetTransition},
		resourceOnly(0x16, "rpm_set_transition_failure"),
		{Opcode: 0x17, Name: "rpm_error_fatal", MinWords: 4, Render: renderErrorFatal},
		fixed(0x18, "rpm_invalidate_to_nothing"),
		resourceOnly(0x19, "rpm_invalidated_driver_dispatch"),
		rejected(0x1a, "rpm_invalidated_driver_complete"),
		masterOnly(0x1b, "rpm_outgoing_notification"),
		{Opcode: 0x1c, Name: "rpm_soft_request_initiated", MinWords: 2, Render: renderSoftRequestInitiated},
		{Opcode: 0x1d, Name: "rpm_xo_shutdown", MinWords: 1, Render: renderXOShutdown},
		{Opcode: 0x1e, Name: "rpm_vdd_min", MinWords: 1, Render: renderVddMin},
		{Opcode: 0x1f, Name: "rpm_mpm_wakeup_ints", MinWords: 2, Render: renderMPMWakeupInts},
		{Opcode: 0x20, Name: "rpm_request_queued", MinWords: 2, Render: renderRequestQueued},
		{Opcode: 0x21, Name: "rpm_no_sleep", MinWords: 1, Render: renderNoSleep},
		{Opcode: 0x22, Name: "rpm_transition_queued", MinWords: 2, Render: renderTransitionQueued},
		masterOnly(0x23, "rpm_master_set_transition_complete"),
		{Opcode: 0x24, Name: "rpm_new_worst_case", MinWords: 4, Render: renderNewWorstCase},
		{Opcode: 0x25, Name: "rpm_timed_transition", MinWords: 4, Render: renderTimedTransition},
		{Opcode: 0x26, Name: "rpm_halt", MinWords: 1, Render: renderHalt},
		rollover(0x27, "rpm_timetick_rollover"),
		rollover(0x28, "rpm_bad_rollover"),
		svs(0x29, "fast"),
		svs(0x2a, "slow"),
		{Opcode: 0x2b, Name: "rpm_hash_mismatch", MinWords: 4, Render: renderHashMismatch},
		{Opcode: 0x2c, Name: "rpm_stop_logging", MinWords: 1, Render: renderStopLogging},
		{Opcode: 0x2d, Name: "rpm_aborted_dispatch", MinWords: 2, Render: renderAbortedDispatch},
	}
}

// fixed is a message with no payload fields
func fixed(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, Render: func(*Context, Payload) (string, error) {
		return name, nil
	}}
}

func masterOnly(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 1, Render: func(ctx *Context, p Payload) (string, error) {
		return fmt.Sprintf("%s (master: %s)", name, ctx.Profile.MasterName(p[0])), nil
	}}
}

func resourceOnly(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 1, Render: func(ctx *Context, p Payload) (string, error) {
		return fmt.Sprintf("%s (resource: %s)", name, ctx.Profile.ResourceName(p[0])), nil
	}}
}

func rejected(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 1, Render: func(_ *Context, p Payload) (string, error) {
		return fmt.Sprintf("%s (rejected: %d)", name, p[0]), nil
	}}
}

// masterCore is a power handshake with an optional core number
func masterCore(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 1, Render: func(ctx *Context, p Payload) (string, error) {
		msg := fmt.Sprintf("%s (master: %s)", name, ctx.Profile.MasterName(p[0]))
		if len(p) > 1 {
			msg += fmt.Sprintf(" (core: %d)", p[1])
		}
		return msg, nil
	}}
}

func rollover(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 3, Render: func(_ *Context, p Payload) (string, error) {
		return fmt.Sprintf("%s (current: 0x%08x) (last: 0x%08x) (upperBits: 0x%08x)", name, p[0], p[1], p[2]), nil
	}}
}

func svs(op uint32, mode string) Entry {
	return Entry{Opcode: op, Name: "rpm_svs_" + mode, MinWords: 1, Render: func(_ *Context, p Payload) (string, error) {
		reason := svsReason(p[0])
		msg := fmt.Sprintf(`rpm_svs (mode: "%s") (reason: "%s")`, mode, reason)
		if p[0] == 1 || p[0] == 2 {
			if err := p.need(4); err != nil {
				return "", err
			}
			msg += fmt.Sprintf(" (old_duration: 0x%08x) (new_duration: 0x%08x) (switch_time: 0x%08x)", p[1], p[2], p[3])
		}
		return msg, nil
	}}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func renderBootFinished(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_boot_finished (succeeded: %d)", boolInt(p[0] == 0)), nil
}

func renderDriverRegistered(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_driver_registered (resource: %s) (npa_driver: %d)", ctx.Profile.ResourceName(p[0]), p[1]), nil
}

func renderStatusUpdating(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_status_updating (resource: %s) (in_flux: %d)", ctx.Profile.ResourceName(p[0]), p[1]), nil
}

func renderServicingMaster(ctx *Context, p Payload) (string, error) {
	if int(p[1]) >= len(servicingStates) {
		return "", &FieldError{Field: "state", Value: p[1]}
	}
	return fmt.Sprintf("rpm_servicing_master (master: %s) (state: %s) (preempt: %d) (stop_time: 0x%x)",
		ctx.Profile.MasterName(p[0]), servicingStates[p[1]], p[2], p[3]), nil
}

func renderRequestAborted(ctx *Context, p Payload) (string, error) {
	reason, ok := abortReasons[p[1]]
	if !ok {
		return "", &FieldError{Field: "abort reason", Value: p[1]}
	}
	return fmt.Sprintf("rpm_request_aborted (master: %s) (reason: %s)", ctx.Profile.MasterName(p[0]), quote(reason)), nil
}

func renderDriverDispatch(ctx *Context, p Payload) (string, error) {
	msg := fmt.Sprintf("rpm_driver_dispatch (resource: %s)", ctx.Profile.ResourceName(p[0]))
	if len(p) > 1 {
		switch p[1] {
		case 1:
			msg += " (effective_immediately: yes)"
		case 2:
			msg += " (effective_immediately: no)"
		}
	}
	return msg, nil
}

func renderMasterDeferred(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf(`rpm_master_deferred (master: %s) (actions: "%s") (defer_count: %d)`,
		ctx.Profile.MasterName(p[0]), actionNames(p[1]), p[2]), nil
}

func renderTriggerFired(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_trigger_fired (interrupt: %s)", triggerInterruptName(p[0])), nil
}

func renderMasterSetTransition(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_master_set_transition (master: %s) (leaving: %s) (entering: %s)",
		ctx.Profile.MasterName(p[0]), setName(p[1]), setName(p[2])), nil
}

func renderErrorFatal(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_error_fatal (pc: 0x%08x) (a: 0x%08x) (b: 0x%08x) (c: 0x%08x)", p[0], p[1], p[2], p[3]), nil
}

func renderSoftRequestInitiated(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_soft_request_initiated (master: %s) (resource: %s)",
		ctx.Profile.MasterName(p[0]), ctx.Profile.ResourceName(p[1])), nil
}

func renderXOShutdown(_ *Context, p Payload) (string, error) {
	if p[0] != 0 {
		return "rpm_xo_shutdown_exit", nil
	}
	if err := p.need(3); err != nil {
		return "", err
	}
	return fmt.Sprintf("rpm_xo_shutdown_enter (count: %d) (planned_duration: 0x%08x)", p[1], p[2]), nil
}

func renderVddMin(_ *Context, p Payload) (string, error) {
	switch p[0] {
	case 0:
		if err := p.need(4); err != nil {
			return "", err
		}
		return fmt.Sprintf("rpm_vdd_min_enter (count: %d) (dig_mv: %d) (mem_mv: %d)", p[1], p[2], p[3]), nil
	case 1:
		return "rpm_vdd_min_exit", nil
	default:
		if err := p.need(2); err != nil {
			return "", err
		}
		return fmt.Sprintf("rpm_vdd_min_enter (planned_duration: 0x%08x)", p[1]), nil
	}
}

func renderMPMWakeupInts(ctx *Context, p Payload) (string, error) {
	mask := uint64(p[1])<<32 | uint64(p[0])
	return fmt.Sprintf(`rpm_mpm_wakeup_ints (interrupts: "%s")`,
		bitfield.Render("interrupt", ctx.Profile.MPMInterrupts, mask)), nil
}

func renderRequestQueued(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_request_queued (master: %s) (index: %d)", ctx.Profile.MasterName(p[0]), p[1]), nil
}

func renderNoSleep(_ *Context, p Payload) (string, error) {
	switch p[0] {
	case 0:
		if err := p.need(2); err != nil {
			return "", err
		}
		return fmt.Sprintf("rpm_no_sleep (pending_int: %d)", p[1]), nil
	case 1:
		if err := p.need(2); err != nil {
			return "", err
		}
		return fmt.Sprintf("rpm_no_sleep (next_event: 0x%08x)", p[1]), nil
	default:
		return "rpm_no_sleep", nil
	}
}

func renderTransitionQueued(ctx *Context, p Payload) (string, error) {
	msg := fmt.Sprintf("rpm_transition_queued (master: %s) ", ctx.Profile.MasterName(p[0]))
	if p[1] == 0 {
		return msg + `(scheduled: "no")`, nil
	}
	if err := p.need(3); err != nil {
		return "", err
	}
	return msg + fmt.Sprintf(`(scheduled: "yes") (deadline: 0x%08x)`, p[2]), nil
}

func renderNewWorstCase(ctx *Context, p Payload) (string, error) {
	var msg string
	if p[0] == 0 {
		msg = fmt.Sprintf("rpm_new_worst_case (resource: %s) (observed: %d)", ctx.Profile.ResourceName(p[1]), p[2])
	} else {
		msg = fmt.Sprintf("rpm_new_worst_case (quantity: %d) (observed: %d)", p[1], p[2])
	}
	if p[3] != 0 {
		msg += fmt.Sprintf(" (frequency: %d)", p[3])
	}
	return msg, nil
}

func renderTimedTransition(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_timed_transition (master: %s) (from_set: %s) (to_set: %s) (deadline: 0x%08x)",
		ctx.Profile.MasterName(p[0]), setName(p[1]), setName(p[2]), p[3]), nil
}

func renderHalt(_ *Context, p Payload) (string, error) {
	if p[0] != 0 {
		return "rpm_halt_exit", nil
	}
	if err := p.need(2); err != nil {
		return "", err
	}
	return fmt.Sprintf("rpm_halt_enter (planned_duration: 0x%08x)", p[1]), nil
}

func renderHashMismatch(_ *Context, p Payload) (string, error) {
	if p[0] == 0 {
		return fmt.Sprintf("rpm_hash_mismatch (system_state: %d) (cache_result_state: %d) (result_state: %d)",
			p[1], p[2], p[3]), nil
	}
	return fmt.Sprintf("rpm_hash_mismatch (next_task: %d) (pre_state: %d) (next_state: %d) (system_hash: %d)",
		p[0], p[1], p[2], p[3]), nil
}

func renderStopLogging(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("rpm_stop_logging (reason: %d)", p[0]), nil
}

func renderAbortedDispatch(ctx *Context, p Payload) (string, error) {
	switch p[0] {
	case 1:
		return fmt.Sprintf("rpm_aborted_dispatch (master: %s)", ctx.Profile.MasterName(p[1])), nil
	case 2:
		if err := p.need(4); err != nil {
			return "", err
		}
		return fmt.Sprintf("rpm_aborted_dispatch (master: %s) (estimate: 0x%x) (stop_time: 0x%x)",
			ctx.Profile.MasterName(p[1]), p[2], p[3]), nil
	default:
		return "", &FieldError{Field: "abort variant", Value: p[0]}
	}
}
