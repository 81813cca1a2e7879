package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/baigashl/blog/cmd/blogctl/output"
	"github.com/baigashl/blog/cmd/blogctl/root"
	"github.com/baigashl/blog/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect and prune the audit log",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent audit entries, newest first",
		RunE:  runList,
	}
	listCmd.Flags().Int("limit", 50, "maximum entries to show")
	listCmd.Flags().Int("offset", 0, "entries to skip")

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than the retention window",
		Long:  "Runs the same pruning the server's scheduler performs daily.",
		RunE:  runPrune,
	}
	pruneCmd.Flags().Int("days", 90, "retention window in days")

	auditCmd.AddCommand(listCmd, pruneCmd)
	root.GetRoot().AddCommand(auditCmd)
}

// ==========================
// List Audit Entries
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := repo.NewAuditRepo(db).List(context.Background(), limit, offset)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.ID, e.UserID, e.Action, e.ResourceType, e.ResourceID,
			e.CreatedAt.Format(time.RFC3339),
		})
	}
	output.RenderTable([]string{"ID", "User", "Action", "Resource", "Resource ID", "At"}, rows)
	return nil
}

// ==========================
// Prune Audit Entries
// ==========================
func runPrune(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := repo.NewAuditRepo(db).PruneOlderThan(context.Background(), cutoff)
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d audit entries older than %s\n", n, cutoff.Format("2006-01-02"))
	return nil
}
