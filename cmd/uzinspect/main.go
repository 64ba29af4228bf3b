// Command uzinspect shows how uz values are rendered and validated.
//
//	uzinspect render Uz12 0xfff
//	uzinspect list
//
// Run without arguments on a terminal it opens an interactive inspector
// that re-renders on every keystroke.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/wasmabi"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// interactive reports whether both ends of the session are a terminal.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uzinspect",
		Short:         "Inspect UzN and RzM values",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactive() {
				return cmd.Help()
			}
			return runInteractive()
		},
	}

	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newListCommand())
	return cmd
}

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <type> <value>",
		Short: "Print every rendering of a value, or why it is rejected",
		Long: `Build a value of the given type (Uz1..Uz32, Rz1..Rz32) through its
checked constructor and print its debug, display and hex renderings.

The value is a Go integer literal: 5, 0b101, 0o17, 0xfff, 1_000.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := inspect(args[0], args[1])
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func writeReport(w io.Writer, r report) {
	fmt.Fprintf(w, "type     %s (%s)\n", r.Desc.Name, describe(r.Desc))
	fmt.Fprintf(w, "debug    %s\n", r.Debug)
	fmt.Fprintf(w, "display  %s\n", r.Display)
	fmt.Fprintf(w, "hex      %s\n", r.Hex)
	fmt.Fprintf(w, "wit      %s\n", r.WIT)
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every type with its backing, domain and WIT carrier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("TYPE", "FAMILY", "BITS", "VALUES", "BACKING", "DEBUG", "WIT")
			for _, d := range uz.Descriptors() {
				debug := "binary"
				if n := d.HexDigits(); n > 0 {
					debug = "hex/" + strconv.Itoa(n)
				}
				t.Row(
					d.Name,
					d.Family.String(),
					strconv.Itoa(int(d.Width)),
					strconv.FormatUint(d.Len, 10),
					d.Backing(),
					debug,
					wasmabi.TypeName(wasmabi.Carrier(d)),
				)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
