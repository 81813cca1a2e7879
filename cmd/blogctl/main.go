package main

import (
	"fmt"
	"os"

	"github.com/baigashl/blog/cmd/blogctl/root"

	// Subcommands register themselves with the root command.
	_ "github.com/baigashl/blog/cmd/blogctl/audit"
	_ "github.com/baigashl/blog/cmd/blogctl/posts"
	_ "github.com/baigashl/blog/cmd/blogctl/users"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
