package filelog

import (
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level is an ordered criticality token. Lower criticality means more severe.
type Level struct {
	Name        string          `json:"name" toml:"name" yaml:"name"`
	ShortName   string          `json:"short_name" toml:"short_name" yaml:"short_name"`
	Criticality int             `json:"criticality" toml:"criticality" yaml:"criticality"`
	Color       color.Attribute `json:"color" toml:"color" yaml:"color"`
}

// Built-in levels. Their criticality values are fixed.
var (
	// None is not registered; as a threshold it disables all output.
	None = &Level{Name: "None", ShortName: "None", Criticality: -1, Color: color.Reset}

	Critical   = &Level{Name: "Critical", ShortName: "Crit", Criticality: 0, Color: color.FgRed}
	Exception  = &Level{Name: "Exception", ShortName: "Excep", Criticality: 10, Color: color.FgRed}
	Error      = &Level{Name: "Error", ShortName: "Err", Criticality: 10, Color: color.FgRed}
	Warning    = &Level{Name: "Warning", ShortName: "Warn", Criticality: 20, Color: color.FgYellow}
	Info       = &Level{Name: "Info", ShortName: "Info", Criticality: 30, Color: color.FgWhite}
	Verbose    = &Level{Name: "Verbose", ShortName: "Verb", Criticality: 40, Color: color.FgGreen}
	Diagnostic = &Level{Name: "Diagnostic", ShortName: "Diag", Criticality: 50, Color: color.FgBlue}
)

// GE reports whether l is of greater or equal criticality value than other.
// Used as threshold.GE(entry), it tells whether an entry passes the threshold.
// A nil other always passes.
func (l *Level) GE(other *Level) bool {
	if other == nil {
		return true
	}
	return l.Criticality >= other.Criticality
}

// LE reports whether l is of lesser or equal criticality value than other.
// A nil other always passes.
func (l *Level) LE(other *Level) bool {
	if other == nil {
		return true
	}
	return l.Criticality <= other.Criticality
}

// String returns the level name.
func (l *Level) String() string {
	return l.Name
}

// Registry holds the levels known to one or more loggers.
// It is safe for concurrent use; entries live as long as the registry.
type Registry struct {
	mu     sync.RWMutex
	levels []*Level
	deflt  *Level
}

// NewRegistry creates a registry seeded with the built-in levels. Info is the default.
func NewRegistry() *Registry {
	return &Registry{
		levels: []*Level{Critical, Exception, Error, Warning, Info, Verbose, Diagnostic},
		deflt:  Info,
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by loggers that were not
// given one with WithRegistry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register creates and adds a custom level. An empty shortName defaults to the first
// four characters of name. Name and short name must not collide, ignoring case, with
// any registered name or short name.
func (r *Registry) Register(name, shortName string, criticality int, c color.Attribute) (*Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newConfigError("Register", name, ErrInvalidConfig)
	}
	if shortName == "" {
		shortName = name
		if len(shortName) > 4 {
			shortName = shortName[:4]
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return nil, newConfigError("Register", name, ErrDuplicateLevelName)
	}
	if r.taken(shortName) {
		return nil, newConfigError("Register", shortName, ErrDuplicateLevelName)
	}

	level := &Level{Name: name, ShortName: shortName, Criticality: criticality, Color: c}
	r.levels = append(r.levels, level)
	return level, nil
}

// taken reports whether s is used as a name or short name. Caller holds r.mu.
func (r *Registry) taken(s string) bool {
	if strings.EqualFold(None.Name, s) {
		return true
	}
	for _, l := range r.levels {
		if strings.EqualFold(l.Name, s) || strings.EqualFold(l.ShortName, s) {
			return true
		}
	}
	return false
}

// Lookup finds a level by name, then by short name, ignoring case.
// "None" resolves to the None sentinel.
func (r *Registry) Lookup(expr string) (*Level, bool) {
	expr = strings.TrimSpace(expr)
	if strings.EqualFold(expr, None.Name) {
		return None, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, level := range r.levels {
		if strings.EqualFold(level.Name, expr) {
			return level, true
		}
	}
	for _, level := range r.levels {
		if strings.EqualFold(level.ShortName, expr) {
			return level, true
		}
	}
	return nil, false
}

// Select is Lookup that never fails: an unknown expression yields the default level.
// A typo therefore silently routes to the default instead of surfacing an error.
func (r *Registry) Select(expr string) *Level {
	if level, ok := r.Lookup(expr); ok {
		return level
	}
	return r.Default()
}

// Default returns the registry's fallback level.
func (r *Registry) Default() *Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.deflt
}

// SetDefault changes the fallback level. The level must already be registered.
func (r *Registry) SetDefault(level *Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.levels {
		if l == level {
			r.deflt = level
			return nil
		}
	}
	return newConfigError("SetDefault", level.String(), ErrInvalidConfig)
}

// Levels returns a copy of the registered levels in registration order.
func (r *Registry) Levels() []*Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Level, len(r.levels))
	copy(out, r.levels)
	return out
}

// Padding is the label width used to align level names: longest name + 3.
func (r *Registry) Padding() int {
	return r.longest(func(l *Level) string { return l.Name }) + 3
}

// ShortPadding is Padding for short names.
func (r *Registry) ShortPadding() int {
	return r.longest(func(l *Level) string { return l.ShortName }) + 3
}

func (r *Registry) longest(field func(*Level) string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.levels {
		if w := len(field(l)); w > n {
			n = w
		}
	}
	return n
}
