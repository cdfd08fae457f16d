package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/models"
)

func newMenuCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the wiki tools",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printMenu(cmd.OutOrStdout(), models.HubEntries())
		},
	}
}

func printMenu(w io.Writer, entries []models.HubEntry) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintln(w, "\n🏭 Industrialist Wiki Tools")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Tool", "Description", "Status"}),
	)
	for _, e := range entries {
		status := color.GreenString("Available")
		if !e.Available {
			status = color.YellowString("Coming Soon™")
		}
		_ = table.Append([]string{e.Title, e.Description, status})
	}
	_ = table.Render()
}
