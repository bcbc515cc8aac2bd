package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/expense-tracker/cmd/categories"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/shell"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(shell.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
