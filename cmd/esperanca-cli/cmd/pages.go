package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/pages"
)

const shellName = "shell"

func newPagesCmd() *cobra.Command {
	p := &cobra.Command{
		Use:   "pages",
		Short: "List and render page markup",
	}

	p.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the page keys",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range domain.PageKeys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	})

	var wasm string
	render := &cobra.Command{
		Use:   "render <page|shell>",
		Short: "Print the markup of a page or of the shell document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var node cmp.Node
			if args[0] == shellName {
				opts := pages.DefaultShellOptions()
				opts.WasmFile = wasm
				node = pages.Shell(opts)
			} else {
				key, ok := domain.ParsePageKey(args[0])
				if !ok {
					return fmt.Errorf("unknown page %q: %w", args[0], domain.ErrNotFound)
				}
				node, _ = pages.Content(key)
			}
			markup, err := pages.Render(node)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}
	render.Flags().StringVar(&wasm, "wasm", pages.DefaultShellOptions().WasmFile, "wasm bundle the shell loads; empty omits the loader")
	p.AddCommand(render)
	return p
}
