package posts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/baigashl/blog/cmd/blogctl/output"
	"github.com/baigashl/blog/cmd/blogctl/root"
	"github.com/baigashl/blog/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all posts",
		RunE:  runList,
	}
	listCmd.Flags().Int("author", 0, "only posts by this author id")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post by id",
		Long:  "Delete a post directly, bypassing the ownership check the web handlers enforce.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	postsCmd.AddCommand(listCmd, deleteCmd)
	root.GetRoot().AddCommand(postsCmd)
}

// ==========================
// List Posts
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	posts := repo.NewPostRepo(db)
	authorID, _ := cmd.Flags().GetInt("author")

	var rows [][]interface{}
	if authorID > 0 {
		ps, err := posts.ListByAuthor(context.Background(), authorID)
		if err != nil {
			return err
		}
		for _, p := range ps {
			rows = append(rows, []interface{}{p.ID, p.Title, p.AuthorID, p.AuthorEmail})
		}
	} else {
		ps, err := posts.List(context.Background())
		if err != nil {
			return err
		}
		for _, p := range ps {
			rows = append(rows, []interface{}{p.ID, p.Title, p.AuthorID, p.AuthorEmail})
		}
	}

	output.RenderTable([]string{"ID", "Title", "Author ID", "Author Email"}, rows)
	return nil
}

// ==========================
// Delete Post
// ==========================
func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post id %q", args[0])
	}

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.NewPostRepo(db).Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Deleted post %d\n", id)
	return nil
}
