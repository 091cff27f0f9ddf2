package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/esperanca/internal/validation"
)

func newCPFCmd() *cobra.Command {
	cpf := &cobra.Command{
		Use:   "cpf",
		Short: "Work with CPF numbers",
	}
	cpf.AddCommand(&cobra.Command{
		Use:   "check <cpf>...",
		Short: "Report whether each CPF has valid check digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, raw := range args {
				status := "valid"
				if !validation.IsNationalID(raw) {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", validation.MaskNationalID(raw), status)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d CPF numbers are invalid", invalid, len(args))
			}
			return nil
		},
	})
	return cpf
}

func newMaskCmd() *cobra.Command {
	mask := &cobra.Command{
		Use:   "mask",
		Short: "Format input the way the registration form does while typing",
	}
	mask.AddCommand(
		maskCmd("cpf", "Format as XXX.XXX.XXX-XX", validation.MaskNationalID),
		maskCmd("phone", "Format as (XX) XXXXX-XXXX", validation.MaskPhone),
	)
	return mask
}

func maskCmd(name, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), fn(args[0]))
		},
	}
}
