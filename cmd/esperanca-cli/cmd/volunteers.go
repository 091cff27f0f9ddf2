package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/form"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/storage"
)

var errRejected = errors.New("registration rejected")

func newVolunteersCmd(opts *options) *cobra.Command {
	v := &cobra.Command{
		Use:   "volunteers",
		Short: "List, register and watch volunteer registrations",
	}
	v.AddCommand(
		newVolunteersListCmd(opts),
		newVolunteersRegisterCmd(opts),
		newVolunteersWatchCmd(opts),
	)
	return v
}

func newVolunteersListCmd(opts *options) *cobra.Command {
	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored registrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := storage.NewVolunteerList(opts.store(), opts.logger).List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				out, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SAVED AT\tNAME\tEMAIL\tCITY")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					r.SavedAt.Format(domain.SavedAtLayout),
					r.Fields[pages.FieldName], r.Fields[pages.FieldEmail], r.Fields[pages.FieldCity])
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "print the stored records as JSON")
	return list
}

// registerFlags maps flag names to form field ids.
var registerFlags = []struct{ name, usage string }{
	{pages.FieldName, "full name"},
	{pages.FieldCPF, "CPF, with or without punctuation"},
	{pages.FieldEmail, "email address"},
	{pages.FieldPhone, "phone number with area code"},
	{pages.FieldBirthdate, "birth date as YYYY-MM-DD"},
	{pages.FieldAddress, "street address"},
	{pages.FieldCEP, "postal code as XXXXX-XXX"},
	{pages.FieldCity, "city"},
}

func newVolunteersRegisterCmd(opts *options) *cobra.Command {
	values := make(map[string]*string, len(registerFlags))
	var updates string

	reg := &cobra.Command{
		Use:   "register",
		Short: "Fill in and submit the registration form",
		Long: `register opens the registration page, types each flag into its field and
submits the form. Field errors are printed the way the page shows them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			s.doc.SetHash(string(domain.PageRegister))
			formEl, ok := s.doc.Query(form.Selector)
			if !ok {
				return fmt.Errorf("registration form: %w", domain.ErrNotFound)
			}
			for _, f := range registerFlags {
				if el, ok := formEl.Query("#" + f.name); ok {
					s.doc.Type(el, *values[f.name])
				}
			}
			switch updates {
			case "":
			case "sim", "nao":
				if el, ok := formEl.Query(fmt.Sprintf("input[name=%q][value=%q]", pages.FieldUpdates, updates)); ok {
					el.SetChecked(true)
				}
			default:
				return fmt.Errorf("--updates must be sim or nao, got %q", updates)
			}

			out := cmd.OutOrStdout()
			switch s.page.Form.Submit(ctx, formEl) {
			case form.OutcomeAccepted:
				fmt.Fprintln(out, form.MsgRegistered)
				return nil
			case form.OutcomeRejected:
				for _, field := range form.Fields(s.page.Form.Rules()) {
					if msg, ok := s.doc.ElementByID(form.ErrorID(field)); ok {
						fmt.Fprintf(out, "%s: %s\n", field, msg.Text())
					}
				}
				return errRejected
			default:
				return errors.New(form.MsgSaveFailed)
			}
		},
	}
	for _, f := range registerFlags {
		values[f.name] = reg.Flags().String(f.name, "", f.usage)
	}
	reg.Flags().StringVar(&updates, pages.FieldUpdates, "", "receive project updates: sim or nao")
	return reg
}

func newVolunteersWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the registration count whenever the stored list changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := os.MkdirAll(opts.cfg.StorageDir, 0o755); err != nil {
				return fmt.Errorf("creating storage dir: %w", err)
			}
			list := storage.NewVolunteerList(opts.store(), opts.logger)
			report := func() {
				records, err := list.List(ctx)
				if err != nil {
					opts.logger.Error("Failed to read volunteers", "error", err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d volunteers\n", len(records))
			}

			report()
			return storage.Watch(ctx, opts.cfg.StorageDir, domain.VolunteersKey, report)
		},
	}
}
