package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/contact"
)

var (
	inquiriesStatus string
	inquiriesLimit  int
	inquiriesJSON   bool
)

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List stored contact form inquiries",
	Long:  `Lists inquiries received by the contact endpoint, newest first. Use --status failed to find inquiries whose notification was never delivered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		status := contact.Status(inquiriesStatus)
		switch status {
		case "", contact.StatusPending, contact.StatusDelivered, contact.StatusFailed:
		default:
			return fmt.Errorf("invalid status %q: must be one of pending, delivered, failed", inquiriesStatus)
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		store := contact.NewStore(database)
		list, err := store.List(context.Background(), contact.ListFilter{
			Status: status,
			Limit:  inquiriesLimit,
		})
		if err != nil {
			return fmt.Errorf("listing inquiries: %w", err)
		}

		if inquiriesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}

		if len(list) == 0 {
			fmt.Fprintln(os.Stderr, "No inquiries found.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RECEIVED\tSTATUS\tNAME\tEMAIL\tID")
		for _, inq := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				inq.ReceivedAt.Local().Format("2006-01-02 15:04"), inq.Status, inq.Name, inq.Email, inq.ID)
		}
		return tw.Flush()
	},
}

func init() {
	inquiriesCmd.Flags().StringVar(&inquiriesStatus, "status", "", "filter by status (pending, delivered, failed)")
	inquiriesCmd.Flags().IntVarP(&inquiriesLimit, "limit", "n", 20, "maximum number of inquiries to show")
	inquiriesCmd.Flags().BoolVar(&inquiriesJSON, "json", false, "print inquiries as JSON")
	rootCmd.AddCommand(inquiriesCmd)
}
