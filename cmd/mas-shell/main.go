// mas-shell is an interactive shell for inspecting and editing MAS
// design documents, with an optional design history database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mas-protocol/mas-go/cmd/mas-shell/interactive"
	"github.com/mas-protocol/mas-go/pkg/store"
)

func main() {
	dbPath := flag.String("db", "", "Design history database (optional)")
	flag.Parse()

	var history *store.Store
	if *dbPath != "" {
		var err error
		history, err = store.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open design history: %v\n", err)
			os.Exit(1)
		}
		defer history.Close()
	}

	shell, err := interactive.New(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start shell: %v\n", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		shell.Load(flag.Arg(0))
	}

	shell.Run()
}
