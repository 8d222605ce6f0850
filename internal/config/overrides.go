package config

import (
	"fmt"

	"github.com/cj3636/zprompt/internal/color"
)

// Role is a semantic color slot a user can override.
type Role int

const (
	RoleVCSIcon Role = iota
	RoleBranch
	RoleStaged
	RoleUnstaged
	RoleUntracked
	RoleConflict
	RoleStashed
	RoleClean
	RoleAhead
	RoleBehind
	numRoles
)

var roleKeys = [numRoles]string{
	RoleVCSIcon:   "vcs_icon",
	RoleBranch:    "branch",
	RoleStaged:    "staged",
	RoleUnstaged:  "unstaged",
	RoleUntracked: "untracked",
	RoleConflict:  "conflict",
	RoleStashed:   "stashed",
	RoleClean:     "clean",
	RoleAhead:     "ahead",
	RoleBehind:    "behind",
}

// Roles returns every role in segment order.
func Roles() []Role {
	out := make([]Role, numRoles)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// Key returns the snake_case name used in config files.
func (r Role) Key() string {
	if r >= 0 && r < numRoles {
		return roleKeys[r]
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) String() string { return r.Key() }

// RoleForKey looks up a role by its config file name.
func RoleForKey(key string) (Role, bool) {
	for i, k := range roleKeys {
		if k == key {
			return Role(i), true
		}
	}
	return 0, false
}

// Overrides carries user-chosen colors: an optional global color and one
// optional color per role. A nil pointer means "not provided".
type Overrides struct {
	Global *color.Color
	roles  [numRoles]*color.Color
}

// Role returns the override for r, or nil.
func (o Overrides) Role(r Role) *color.Color {
	if r < 0 || r >= numRoles {
		return nil
	}
	return o.roles[r]
}

// WithRole returns a copy of o with the override for r replaced. A nil c
// clears it.
func (o Overrides) WithRole(r Role, c *color.Color) Overrides {
	if r >= 0 && r < numRoles {
		o.roles[r] = c
	}
	return o
}

// WithGlobal returns a copy of o with the global override replaced.
func (o Overrides) WithGlobal(c *color.Color) Overrides {
	o.Global = c
	return o
}

// Resolve picks the effective color for r given its built-in default.
func (o Overrides) Resolve(r Role, def color.Color) color.Color {
	return Resolve(def, o.Role(r), o.Global)
}

// Resolve applies the override precedence: role override, then global
// override, then the built-in default.
func Resolve(def color.Color, role, global *color.Color) color.Color {
	if role != nil {
		return *role
	}
	if global != nil {
		return *global
	}
	return def
}

// MergeOverrides overlays top onto base slot by slot; slots top leaves unset
// keep the base value.
func MergeOverrides(base, top Overrides) Overrides {
	merged := base
	if top.Global != nil {
		merged.Global = top.Global
	}
	for i, c := range top.roles {
		if c != nil {
			merged.roles[i] = c
		}
	}
	return merged
}

// ParseOverrides builds Overrides from raw strings keyed by role name, with
// "default" naming the global slot. Unknown keys and malformed colors are
// dropped.
func ParseOverrides(raw map[string]string) Overrides {
	var o Overrides
	for key, value := range raw {
		c := color.ParseOptional(value)
		if c == nil {
			continue
		}
		if key == "default" {
			o.Global = c
			continue
		}
		if r, ok := RoleForKey(key); ok {
			o.roles[r] = c
		}
	}
	return o
}
