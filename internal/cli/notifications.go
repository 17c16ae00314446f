package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ppoom-app/ppoom/internal/daemon"
	"github.com/spf13/cobra"
)

func init() {
	notificationsCmd.Flags().BoolVar(&notifUnread, "unread", false, "Only show unread notifications")
	rootCmd.AddCommand(notificationsCmd)
}

var notifUnread bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "Show recent notifications",
	RunE:    runNotifications,
}

func runNotifications(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	notifs, err := d.DB.ListNotifications(20, notifUnread)
	if err != nil {
		return err
	}

	if len(notifs) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tWHEN\tMESSAGE")
	for _, n := range notifs {
		mark := "•"
		if n.Read {
			mark = " "
		}
		fmt.Fprintf(w, "%s\t%s\t%s: %s\n",
			mark,
			n.CreatedAt.Local().Format("01-02 15:04"),
			n.Title,
			n.Body,
		)
	}
	return w.Flush()
}
