package cmds

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
)

// PrintUsage lists the defined commands, sorted by name.
func (p *Executor) PrintUsage() {
	names := slices.Clone(p.names)
	slices.Sort(names)

	w := tabwriter.NewWriter(p.output, 0, 4, 2, ' ', 0)
	for _, name := range names {
		command := p.commands[name]
		usage := name
		for _, arg := range command.ArgNames {
			usage += " <" + arg + ">"
		}
		desc := command.Description
		if len(command.Aliases) > 0 {
			desc += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %s\t%s\n", usage, desc)
	}
	w.Flush()
}
