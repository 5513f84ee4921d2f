package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayplan/internal/emails"
)

func newTriageCmd() *cobra.Command {
	var category, priority, search, from, to, sortKey string
	var reverse bool

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "List summarized emails with filters and sorting",
		Long: `Fetch the emails the backend has categorized and summarized, apply the
given filters and render them sorted. Filters combine: a message must
match every filter you set. Timestamps are shown in your configured
timezone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(nil)
			if err != nil {
				return err
			}

			key := emails.SortKey(sortKey)
			switch key {
			case emails.SortByDate, emails.SortByPriority, emails.SortByCategory:
			default:
				return fmt.Errorf("unknown sort key %q (want date, priority or category)", sortKey)
			}

			criteria := emails.FilterCriteria{
				Category: category,
				Priority: priority,
				Search:   search,
			}
			if from != "" {
				day, err := time.Parse(dayLayout, from)
				if err != nil {
					return fmt.Errorf("failed to parse --from %q: %w", from, err)
				}
				criteria.From = &day
			}
			if to != "" {
				day, err := time.Parse(dayLayout, to)
				if err != nil {
					return fmt.Errorf("failed to parse --to %q: %w", to, err)
				}
				criteria.To = &day
			}

			records, err := eng.mail.Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch emails: %w", err)
			}

			order := emails.SortCriteria{Key: key, Direction: emails.DefaultDirection(key)}
			if reverse {
				order = emails.Toggle(order, key)
			}

			shown := emails.Sort(emails.Filter(records, criteria), order)
			eng.metrics.RecordRecomputation(cmd.Context(), "email_list")
			renderTriage(cmd.OutOrStdout(), shown, len(records), eng.settings.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show this category")
	cmd.Flags().StringVar(&priority, "priority", "", "Only show this priority (high, medium, low)")
	cmd.Flags().StringVar(&search, "search", "", "Only show messages whose subject, sender or summary contains this text")
	cmd.Flags().StringVar(&from, "from", "", "Only show messages received on or after this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Only show messages received up to the end of this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sortKey, "sort", string(emails.SortByDate), "Sort key: date, priority or category")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Reverse the sort direction")
	return cmd
}

func renderTriage(w io.Writer, shown []emails.Record, total int, loc *time.Location) {
	for _, r := range shown {
		fmt.Fprintf(w, "%s  %-6s  %-12s  %s\n",
			r.ReceivedAt.In(loc).Format("2006-01-02 15:04"),
			r.Priority, r.Category, r.Subject)
		fmt.Fprintf(w, "%18s  from %s\n", "", r.Sender)
		if r.Summary != "" {
			fmt.Fprintf(w, "%18s  %s\n", "", r.Summary)
		}
		// The backend serializes action items as one "; "-joined string.
		for _, item := range strings.Split(r.ActionItems, "; ") {
			if item == "" {
				continue
			}
			fmt.Fprintf(w, "%18s  * %s\n", "", item)
		}
	}

	fmt.Fprintf(w, "\n%d of %d messages\n", len(shown), total)
}
