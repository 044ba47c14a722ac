// open.go implements the "nlpsearch open" command, the target a search
// result navigates to. It prints one note, rendered with glamour on a
// terminal.

package core

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/nlpsearch/cmd"
	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newOpenCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "open <path>",
		Short: "Print a note",
		Long: `Print a note from the vault.

Paths are vault-relative and include the .md extension, exactly as
nlp-search lists them:

  nlpsearch open projects/plan.md`,
		Args: cobra.ExactArgs(1),
		RunE: e.runOpen,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print without markdown rendering")
	c.Flags().String(extension.FlagStyle, "dark", "Rendering style")
	return c
}

func (e *Extension) runOpen(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p := args[0]
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	style, _ := c.Flags().GetString(extension.FlagStyle)

	content, err := e.vault.Read(ctx, p)
	log.Event("core:open", "read").Path(p).Detail("bytes", len(content)).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("open %q: %w", p, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": p, "content": content})
	}

	// Render with glamour if TTY and not --raw
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, renderErr := glamour.Render(content, style); renderErr == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}
	fmt.Fprint(cmd.Out(), content)
	return nil
}
