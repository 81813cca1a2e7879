package users

import (
	"context"
	"fmt"

	"github.com/baigashl/blog/cmd/blogctl/output"
	"github.com/baigashl/blog/cmd/blogctl/root"
	"github.com/baigashl/blog/internal/password"
	"github.com/baigashl/blog/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage registered users",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE:  runList,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a user directly in the database. The password must satisfy the same policy the registration form enforces.",
		RunE:  runCreate,
	}
	createCmd.Flags().String("email", "", "email address (required)")
	createCmd.Flags().String("name", "", "first name")
	createCmd.Flags().String("second-name", "", "second name")
	createCmd.Flags().String("password", "", "password (required)")
	createCmd.Flags().Int("age", 0, "age")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(listCmd, createCmd)
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// List Users
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := repo.NewUserRepo(db).List(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Email, u.Name, u.SecondName, u.Age})
	}
	output.RenderTable([]string{"ID", "Email", "Name", "Second Name", "Age"}, rows)
	return nil
}

// ==========================
// Create User
// ==========================
func runCreate(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	secondName, _ := cmd.Flags().GetString("second-name")
	pw, _ := cmd.Flags().GetString("password")
	age, _ := cmd.Flags().GetInt("age")

	if !password.Validate(pw) {
		return fmt.Errorf("password must be at least %d characters with a lowercase letter, an uppercase letter, and a digit", password.MinLength)
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return err
	}

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := repo.NewUserRepo(db).Create(context.Background(), email, name, secondName, hash, age)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
	return nil
}
