package messages

import "fmt"

func regulationEntries() []Entry {
	entries := []Entry{
		modeLevel(0x2f, "cpr_pre_switch_entry", "CPR Pre-switch Entry: (Input mode: %d ) (Input Level: %d uv)"),
		modeLevel(0x30, "cpr_pre_switch_exit", "CPR Pre-switch Exit: (Output Mode: %d ) (Output Level : %d uv)"),
		modeLevel(0x31, "cpr_post_switch", "CPR Post-switch Exit: (Current Mode: %d ) (Current Level : %d mv)"),
		{Opcode: 0x32, Name: "cpr_new_measurement", MinWords: 3, Render: renderCPRMeasurement},
		modeLevel(0x33, "railway_pre_switch", "Railway Pre-switch Recommendation: (Recommended mode: %d ) (Recommended level : %d)"),
		modeLevel(0x34, "railway_post_switch", "Railway Post-switch Recommendation: (Recommended mode: %d ) (Recommended level : %d)"),
		modeLevel(0x35, "railway_default", "Railway Default Recommendation: (Selected mode: %d ) (Selected level : %d)"),
		modeLevel(0x36, "railway_new_proposal", "Railway New Proposal: (Selected mode: %d ) (Selected level : %d)"),
		{Opcode: 0x41, Name: "resource_request_info", MinWords: 3, Render: renderResourceInfo},
		{Opcode: 0x42, Name: "ipq_smb_vote_info", MinWords: 3, Render: renderSMBVote},
		{Opcode: 0x43, Name: "ipq_pmic_vote_info", MinWords: 3, Render: renderPMICVote},
		{Opcode: 0x44, Name: "ipq_pmic_client_vote_info", MinWords: 3, Render: renderPMICClientVote},
	}
	for i := range entries {
		entries[i].Group = GroupRegulation
	}
	return entries
}

// modeLevel is a two word mode/level event
func modeLevel(op uint32, name string, format string) Entry {
	return Entry{Opcode: op, Name: name, MinWords: 2, Render: func(_ *Context, p Payload) (string, error) {
		return fmt.Sprintf(format, p[0], p[1]), nil
	}}
}

func renderCPRMeasurement(_ *Context, p Payload) (string, error) {
	return fmt.Sprintf("CPR interrupt fired: (New offset: %d uv) (Current level : %d) (Current voltage: %d)",
		int32(p[0]), p[1], p[2]), nil
}

func renderResourceInfo(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf("Resource Request Info: %s (Initial Val: %d ) (Requested Val: %d)",
		ctx.Profile.ResourceName(p[0]), p[1], p[2]), nil
}

func renderSMBVote(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf(`SMB Vote Info: " %s "  (Initial level: %s ) (Requested Level: %s)`,
		ctx.Profile.SMBClientName(p[0]), ctx.Profile.SMBLevelVoltage(p[1]), ctx.Profile.SMBLevelVoltage(p[2])), nil
}

func renderPMICVote(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf(`IPQ_PMIC Vote Info: " %s "  (Initial level: %d ) (Requested Level: %d)`,
		ctx.Profile.PMICClientName(p[0]), p[1], p[2]), nil
}

func renderPMICClientVote(ctx *Context, p Payload) (string, error) {
	return fmt.Sprintf(`IPQ_PMIC Client Vote Info: " %s "  " %s " (Requested Level: %d)`,
		ctx.Profile.PMICRailName(p[0]), ctx.Profile.PMICClientName(p[1]), p[2]), nil
}
