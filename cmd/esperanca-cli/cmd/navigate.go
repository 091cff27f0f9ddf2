package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNavigateCmd(opts *options) *cobra.Command {
	var showPage bool
	nav := &cobra.Command{
		Use:   "navigate <fragment>",
		Short: "Load a fragment and print the content container",
		Long: `navigate starts the page on its default page, moves to the given fragment
the way a link click would, and prints the markup the content container holds
afterwards. Anchor fragments such as "sobre" scroll within the home page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			s.doc.SetHash(args[0])

			if showPage {
				fmt.Fprintf(cmd.OutOrStdout(), "page: %s\n", s.page.Router.Current())
				if scroll := s.doc.LastScroll(); scroll != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "scrolled: %s\n", scroll)
				}
				return nil
			}
			markup, err := s.containerHTML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}
	nav.Flags().BoolVar(&showPage, "summary", false, "print the current page and last scroll target instead of markup")
	return nav
}
