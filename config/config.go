// Package config carries the elaboration/simulation options spec §6
// names, in the teacher's fluent value-receiver Builder idiom (see
// api/builder.go's DriverBuilder, core/builder.go's Builder).
package config

import "os"

// VerilogSim names an external RTL simulator a Verilog backend would
// shell out to. The core never branches on it; it exists purely as a
// passthrough field for that (out-of-scope) backend's benefit.
type VerilogSim uint8

const (
	VerilogSimNone VerilogSim = iota
	VerilogSimVCS
	VerilogSimVerilator
)

func (v VerilogSim) String() string {
	switch v {
	case VerilogSimVCS:
		return "vcs"
	case VerilogSimVerilator:
		return "verilator"
	default:
		return "none"
	}
}

// Config collects every elaboration/simulation option spec §6 names,
// grounded on original_source/eir/src/backend/common.rs's `Config`.
type Config struct {
	BaseDir          string
	OverrideDump     bool
	SimThreshold     int
	IdleThreshold    int
	ResourceBase     string
	VerilogSim       VerilogSim
	RewriteWaitUntil bool
}

// FileName joins Config.BaseDir, sysName and suffix into a dump path.
func (c Config) FileName(sysName, suffix string) string {
	return c.BaseDir + "/" + sysName + "." + suffix
}

// DirName joins Config.BaseDir and sysName into a dump directory.
func (c Config) DirName(sysName string) string {
	return c.BaseDir + "/" + sysName
}

// Builder is the fluent constructor for Config, following
// api/builder.go's WithXxx/Build idiom.
type Builder struct {
	cfg Config
}

// NewBuilder seeds a Builder with spec §6's defaults: the OS temp
// directory, override-on, a 100-cycle sim threshold, a 100-cycle idle
// threshold, wait-until rewriting enabled.
func NewBuilder() Builder {
	return Builder{cfg: Config{
		BaseDir:          os.TempDir(),
		OverrideDump:     true,
		SimThreshold:     100,
		IdleThreshold:    100,
		RewriteWaitUntil: true,
	}}
}

func (b Builder) WithBaseDir(dir string) Builder {
	b.cfg.BaseDir = dir
	return b
}

func (b Builder) WithOverrideDump(v bool) Builder {
	b.cfg.OverrideDump = v
	return b
}

func (b Builder) WithSimThreshold(cycles int) Builder {
	b.cfg.SimThreshold = cycles
	return b
}

func (b Builder) WithIdleThreshold(cycles int) Builder {
	b.cfg.IdleThreshold = cycles
	return b
}

func (b Builder) WithResourceBase(dir string) Builder {
	b.cfg.ResourceBase = dir
	return b
}

func (b Builder) WithVerilogSim(sim VerilogSim) Builder {
	b.cfg.VerilogSim = sim
	return b
}

func (b Builder) WithRewriteWaitUntil(v bool) Builder {
	b.cfg.RewriteWaitUntil = v
	return b
}

func (b Builder) Build() Config {
	return b.cfg
}
