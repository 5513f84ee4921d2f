package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dayplan/internal/backend"
	"dayplan/internal/form"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create, edit or delete events",
	}

	cmd.AddCommand(newEventCreateCmd())
	cmd.AddCommand(newEventEditCmd())
	cmd.AddCommand(newEventDeleteCmd())
	return cmd
}

func newEventCreateCmd() *cobra.Command {
	var title, description, date, timeOfDay string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(nil)
			if err != nil {
				return err
			}

			day, err := resolveDay(date)
			if err != nil {
				return err
			}

			ctrl := form.NewController(eng.store, eng.logger)
			if err := ctrl.StartCreate(); err != nil {
				return err
			}
			ctrl.SetTitle(title)
			ctrl.SetDescription(description)
			ctrl.SetTimeOfDay(timeOfDay)
			ctrl.SetSelection(day)

			ev, err := ctrl.Submit(cmd.Context())
			if err != nil {
				return describeSubmitError("create", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created event %d at %s: %s\n", ev.ID, ev.DateTime, ev.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&date, "date", "", "Day of the event (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of day (HH:MM, required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newEventEditCmd() *cobra.Command {
	var title, description, date, timeOfDay string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing event",
		Long: `Edit an event by id. Only the fields given as flags change; everything
else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse event id %q: %w", args[0], err)
			}

			eng, err := newEngine(nil)
			if err != nil {
				return err
			}

			evs, err := eng.store.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to refresh events: %w", err)
			}

			ctrl := form.NewController(eng.store, eng.logger)
			found := false
			for _, ev := range evs {
				if ev.ID == id {
					if err := ctrl.StartEdit(ev); err != nil {
						return err
					}
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("event %d not found", id)
			}

			if cmd.Flags().Changed("title") {
				ctrl.SetTitle(title)
			}
			if cmd.Flags().Changed("description") {
				ctrl.SetDescription(description)
			}
			if cmd.Flags().Changed("time") {
				ctrl.SetTimeOfDay(timeOfDay)
			}
			if cmd.Flags().Changed("date") {
				day, err := resolveDay(date)
				if err != nil {
					return err
				}
				ctrl.SetDay(day)
			}

			ev, err := ctrl.Submit(cmd.Context())
			if err != nil {
				var notFoundErr *backend.NotFoundError
				if errors.As(err, &notFoundErr) {
					// Reconcile the cache with server truth.
					_, _ = eng.store.Refresh(cmd.Context())
				}
				return describeSubmitError("edit", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated event %d at %s: %s\n", ev.ID, ev.DateTime, ev.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&date, "date", "", "New day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "New time of day (HH:MM)")
	return cmd
}

func newEventDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse event id %q: %w", args[0], err)
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete event %d? [y/N] ", id)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			eng, err := newEngine(nil)
			if err != nil {
				return err
			}

			if err := eng.store.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete event %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// describeSubmitError turns the engine's typed errors into actionable
// CLI messages. Validation problems name the bad field value; transport
// problems say the local state is untouched.
func describeSubmitError(action string, err error) error {
	var validationErr *backend.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("invalid event: %s", validationErr.Detail)
	}

	var notFoundErr *backend.NotFoundError
	if errors.As(err, &notFoundErr) {
		return fmt.Errorf("the event no longer exists on the backend; run again after a refresh")
	}

	var transportErr *backend.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Errorf("backend unreachable, nothing was changed: %w", err)
	}

	return fmt.Errorf("failed to %s event: %w", action, err)
}
