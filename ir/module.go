package ir

// AttributeTag enumerates the module attributes named in spec §3 and
// SPEC_FULL.md §10, grounded on eir/src/ir/module/attrs.rs.
type AttributeTag uint8

const (
	// ExplicitPop requires user code to pop its FIFOs explicitly rather
	// than having the runtime auto-pop on trigger.
	ExplicitPop AttributeTag = iota
	// OptNone is recorded on the module only; none of the xform passes
	// checks it, so they rewrite an OptNone module like any other.
	OptNone
	// EagerCallee makes builder.PushBind issue the trigger itself as soon
	// as a bind against this module has every argument bound.
	EagerCallee
	// AllowPartialCall permits Bind/PushBind with fewer than the callee's
	// full argument count.
	AllowPartialCall
	// NoArbiter disables automatic arbitration among concurrent triggers.
	NoArbiter
	// Systolic marks a module as participating in a systolic pipeline,
	// exempting it from wait-until lifting (spec §4.8).
	Systolic
	// Memory marks a module as a synthesized memory wrapper; Params holds
	// its configuration.
	Memory
)

// MemoryParams configures a Memory-attributed module, grounded on
// eir/src/ir/module/memory.rs.
type MemoryParams struct {
	Width       int
	Depth       int
	LatencyInit int
	Init        []uint64
}

// Attribute is a single module-level attribute. Only Memory carries a
// payload.
type Attribute struct {
	Tag    AttributeTag
	Params *MemoryParams
}

// Module is a named process: an ordered set of input FIFOs and a body
// Block executed once per trigger — see spec §3/§4.3 and
// eir/src/ir/module/mod.rs.
type Module struct {
	nodeHeader
	name   string
	inputs []BaseNode // FIFO handles, declaration order
	body   BaseNode   // Block handle
	attrs  []Attribute
	users  map[BaseNode]bool
}

func newModule(name string) *Module {
	return &Module{name: name, users: make(map[BaseNode]bool)}
}

func (m *Module) NodeKind() NodeKind { return KindModule }
func (m *Module) Name() string       { return m.name }
func (m *Module) Inputs() []BaseNode { return m.inputs }
func (m *Module) Body() BaseNode     { return m.body }
func (m *Module) SetBody(b BaseNode) { m.body = b }

// Signature returns this module's port-type signature, matching the
// ordered DataType of each input FIFO.
func (m *Module) Signature(sys *System) DataType {
	ports := make([]DataType, len(m.inputs))
	for i, h := range m.inputs {
		ports[i] = MustGet[*FIFO](sys.arena, h).DType()
	}
	return ModuleType(ports)
}

func (m *Module) addInput(h BaseNode) { m.inputs = append(m.inputs, h) }

// AddAttr records an attribute. Memory attributes require params.
func (m *Module) AddAttr(tag AttributeTag, params *MemoryParams) {
	if tag == Memory && params == nil {
		Violate("module %s: Memory attribute requires params", m.name)
	}
	m.attrs = append(m.attrs, Attribute{Tag: tag, Params: params})
}

// HasAttr reports whether tag is present.
func (m *Module) HasAttr(tag AttributeTag) bool {
	for _, a := range m.attrs {
		if a.Tag == tag {
			return true
		}
	}
	return false
}

// MemoryParams returns the Memory attribute's payload, if present.
func (m *Module) MemoryParams() (*MemoryParams, bool) {
	for _, a := range m.attrs {
		if a.Tag == Memory {
			return a.Params, true
		}
	}
	return nil, false
}

func (m *Module) addUser(op BaseNode) {
	if m.users[op] {
		Violate("module %s: user %s already recorded", m.name, op)
	}
	m.users[op] = true
}

func (m *Module) removeUser(op BaseNode) {
	if !m.users[op] {
		Violate("module %s: user %s not recorded", m.name, op)
	}
	delete(m.users, op)
}

// Users returns the set of Operand handles whose value is this module
// (e.g. as a Bind/AsyncCall/Trigger callee argument).
func (m *Module) Users() map[BaseNode]bool { return m.users }
