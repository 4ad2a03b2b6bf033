package messages

import "fmt"

func npaEntries() []Entry {
	entries := []Entry{
		{Opcode: 0x1000, Name: "npa_request_complete", MinWords: 4, Render: renderRequestComplete},
		{Opcode: 0x1001, Name: "npa_assign_resource_state", MinWords: 2, Render: renderAssignResourceState},
		{Opcode: 0x1002, Name: "npa_issue_limit_max_request", MinWords: 4, Render: renderLimitMaxRequest},
		clientRequest(0x1003, "npa_issue_required_request"),
		{Opcode: 0x1004, Name: "npa_modify_request", MinWords: 2, Render: renderModifyRequest},
		clientOnly(0x1005, "npa_issue_impulse_request"),
		{Opcode: 0x1006, Name: "npa_issue_vector_request", MinWords: 3, Render: renderVectorRequest},
		clientOnly(0x1007, "npa_issue_internal_request"),
		clientOnly(0x1008, "npa_complete_request"),
		clientOnly(0x1009, "npa_cancel_request"),
		fixed(0x100a, "npa_queue_preemptive_flush"),
		clientRequest(0x100b, "npa_issue_suppressible_request"),
	}
	for i := range entries {
		entries[i].Group = GroupNPA
	}
	return entries
}

// clientOnly is a request event identified by its client handle
func clientOnly(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 1, Render: func(ctx *Context, p Payload) (string, error) {
		client := ctx.Symbols.ClientName(p[0])
		resource := ctx.Symbols.ClientResourceName(p[0])
		return fmt.Sprintf(`%s (handle: 0x%08x) (client: "%s") (resource: "%s")`, name, p[0], client, resource), nil
	}}
}

// clientRequest is a request event carrying the requested value
func clientRequest(op uint32, name string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 2, Render: func(ctx *Context, p Payload) (string, error) {
		client := ctx.Symbols.ClientName(p[0])
		resource := ctx.Symbols.ClientResourceName(p[0])
		return fmt.Sprintf(`%s (handle: 0x%08x) (client: "%s") (request: %d) (resource: "%s")`,
			name, p[0], client, p[1], resource), nil
	}}
}

func renderRequestComplete(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("\t request complete (handle: 0x%08x) (sequence: 0x%08x) (request state:%d) (active state:%d)",
		p[0], p[1], p[2], p[3]), nil
}

func renderAssignResourceState(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf(`npa_assign_resource_state (handle: 0x%08x) (resource: "%s") (active state: %d)`,
		p[0], ctx.Symbols.ResourceName(p[0]), p[1]), nil
}

func renderLimitMaxRequest(ctx *Context, p Payload) (string, error) {
	client := ctx.Symbols.ClientName(p[0])
	resource := ctx.Symbols.ResourceName(p[3])
	return fmt.Sprintf(`npa_issue_limit_max_request (handle: 0x%08x) (client: "%s") (max: %d) (resource: "%s")`,
		p[0], client, p[2], resource), nil
}

func renderModifyRequest(ctx *Context, p Payload) (string, error) {
	client := ctx.Symbols.ClientName(p[0])
	resource := ctx.Symbols.ClientResourceName(p[0])
	return fmt.Sprintf(`npa_modify_request (handle: 0x%08x) (client: "%s") (delta: %d) (resource: "%s")`,
		p[0], client, int32(p[1]), resource), nil
}

func renderVectorRequest(ctx *Context, p Payload) (string, error) {
	client := ctx.Symbols.ClientName(p[0])
	resource := ctx.Symbols.ClientResourceName(p[0])
	return fmt.Sprintf(`npa_issue_vector_request (handle: 0x%08x) (client: "%s") (resource: "%s") (num_elems: %d) (vector: 0x%08x)`,
		p[0], client, resource, p[1], p[2]), nil
}
