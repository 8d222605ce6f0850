package cli

import (
	"github.com/cj3636/zprompt/internal/config"
	flag "github.com/spf13/pflag"
)

// roleFlags maps each override role to its command-line flag.
var roleFlags = []struct {
	role  config.Role
	name  string
	usage string
}{
	{config.RoleVCSIcon, "git-icon-color", "Color of the remote and git icons"},
	{config.RoleBranch, "branch-color", "Color of the branch or detached commit"},
	{config.RoleStaged, "staged-color", "Color of the staged count"},
	{config.RoleUnstaged, "unstaged-color", "Color of the unstaged count"},
	{config.RoleUntracked, "untracked-color", "Color of the untracked count"},
	{config.RoleConflict, "conflict-color", "Color of the conflict count"},
	{config.RoleStashed, "stashed-color", "Color of the stash icon"},
	{config.RoleClean, "clean-color", "Color of the clean icon"},
	{config.RoleAhead, "ahead-color", "Color of the ahead count"},
	{config.RoleBehind, "behind-color", "Color of the behind count"},
}

// colorFlags collects raw override strings. Values are parsed only when
// converted, and malformed ones are dropped.
type colorFlags struct {
	global string
	roles  map[config.Role]*string
}

func (f *colorFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.global, "color", "", "Color for every segment without its own override (name or #RGB/#RRGGBB)")
	f.roles = make(map[config.Role]*string, len(roleFlags))
	for _, rf := range roleFlags {
		f.roles[rf.role] = fs.String(rf.name, "", rf.usage)
	}
}

func (f *colorFlags) overrides() config.Overrides {
	raw := map[string]string{"default": f.global}
	for role, v := range f.roles {
		raw[role.Key()] = *v
	}
	return config.ParseOverrides(raw)
}
