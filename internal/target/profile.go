package target

import "fmt"

// Profile is the set of name tables for one chipset.
type Profile struct {
	// ID is the chipset number used to select the profile (e.g. "8660")
	ID string `yaml:"-"`

	// Name is a human-readable chipset name
	Name string `yaml:"name"`

	// Resources maps RPM resource indexes to resource names
	Resources map[uint32]string `yaml:"resources"`

	// Masters maps RPM master indexes to master names
	Masters map[uint32]string `yaml:"masters"`

	// MPMInterrupts maps MPM wake-up interrupt bits to labels
	MPMInterrupts map[uint]string `yaml:"mpm_interrupts"`

	// Platform holds the tables shared by every chipset in the catalog
	Platform *Platform `yaml:"-"`
}

// Platform holds the clock and PMIC vote tables that are not chipset
// specific.
type Platform struct {
	SMBClients  map[uint32]string `yaml:"smb_clients"`
	PMICRails   map[uint32]string `yaml:"pmic_rails"`
	PMICClients map[uint32]string `yaml:"pmic_clients"`

	// SMBLevels maps an SMB vote level to its voltage in microvolts
	SMBLevels map[uint32]uint32 `yaml:"smb_levels"`
}

// ResourceName returns the quoted resource name for index,
// e.g. `"CXO"` or `"Unknown resource 99"`.
func (p *Profile) ResourceName(index uint32) string {
	return quotedLookup(p.Resources, index, "resource")
}

// MasterName returns the quoted master name for index,
// e.g. `"APSS"` or `"Unknown master 7"`.
func (p *Profile) MasterName(index uint32) string {
	return quotedLookup(p.Masters, index, "master")
}

// InterruptName returns the label of a single MPM interrupt bit.
func (p *Profile) InterruptName(bit uint) string {
	if name, ok := p.MPMInterrupts[bit]; ok {
		return name
	}
	return fmt.Sprintf("Unknown interrupt %d", bit)
}

// SMBClientName returns the SMB clock client name for id.
func (p *Profile) SMBClientName(id uint32) string {
	return lookup(p.platform().SMBClients, id, "client")
}

// PMICRailName returns the PMIC rail name for id.
func (p *Profile) PMICRailName(id uint32) string {
	return lookup(p.platform().PMICRails, id, "rail")
}

// PMICClientName returns the PMIC rail client name for id.
func (p *Profile) PMICClientName(id uint32) string {
	return lookup(p.platform().PMICClients, id, "client")
}

// SMBLevelVoltage renders an SMB vote level as its voltage in microvolts,
// or "Unknown level <n>" when the level is not in the table.
func (p *Profile) SMBLevelVoltage(level uint32) string {
	if uv, ok := p.platform().SMBLevels[level]; ok {
		return fmt.Sprintf("%d", uv)
	}
	return fmt.Sprintf("Unknown level %d", level)
}

// String returns a short description of the profile.
func (p *Profile) String() string {
	return fmt.Sprintf("%s - %s (%d resources, %d masters, %d MPM interrupts)",
		p.ID, p.Name, len(p.Resources), len(p.Masters), len(p.MPMInterrupts))
}

func (p *Profile) platform() *Platform {
	if p.Platform == nil {
		return &Platform{}
	}
	return p.Platform
}

func lookup(table map[uint32]string, id uint32, category string) string {
	if name, ok := table[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown %s %d", category, id)
}

func quotedLookup(table map[uint32]string, id uint32, category string) string {
	return `"` + lookup(table, id, category) + `"`
}
