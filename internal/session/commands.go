package session

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/parser"
)

// commandNames lists the session commands for completion.
var commandNames = []string{"del", "exit", "export", "export_all", "help", "inspect", "load", "quit", "set", "who"}

// newRootCommand builds a fresh command tree so flag values never leak
// between input lines.
func (s *Session) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "excelify",
		Short:         "Export tables and series from the session to Excel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.errOut)

	root.AddCommand(
		s.newExportCommand(),
		s.newExportAllCommand(),
		s.newLoadCommand(),
		s.newInspectCommand(),
		s.newSetCommand(),
		s.newDelCommand(),
		s.newWhoCommand(),
	)
	return root
}

func (s *Session) newExportCommand() *cobra.Command {
	var req excelify.Request
	cmd := &cobra.Command{
		Use:   "export <object_name>",
		Short: "Save a table or series to Excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ObjectName = args[0]
			result, err := s.exporter.ExportOne(req, s.ns)
			if err != nil {
				return err
			}
			s.printResult(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Filepath, "filepath", "f", "", "Filepath to Excel spreadsheet (default: {object}_{timestamp}.xlsx)")
	cmd.Flags().StringVarP(&req.SheetName, "sheetname", "s", "", "Sheet name to output data (default: {object}_{timestamp})")
	return cmd
}

func (s *Session) newExportAllCommand() *cobra.Command {
	var req excelify.Request
	cmd := &cobra.Command{
		Use:   "export_all",
		Short: "Save every table and series in the session to one workbook (at most 100)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.exporter.ExportAll(req, s.ns)
			if err != nil {
				return err
			}
			s.printResult(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Filepath, "filepath", "f", "", "Filepath to Excel spreadsheet (default: all_data_{timestamp}.xlsx)")
	cmd.Flags().BoolVarP(&req.NoSort, "nosort", "n", false, "Turns off alphabetical sorting of objects for export to sheets")
	return cmd
}

func (s *Session) newLoadCommand() *cobra.Command {
	var (
		sheet    string
		asSeries bool
	)
	cmd := &cobra.Command{
		Use:   "load <name> <path>",
		Short: "Read a CSV or XLSX file into the session as a table (or series)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := s.Load(args[0], args[1], sheet, asSeries)
			if err != nil {
				return err
			}
			v, _ := s.ns.Get(args[0])
			fmt.Fprintf(s.out, "%s = %s (%d rows)\n", nameStyle.Render(args[0]), models.KindOf(v), rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from an xlsx file (default: first sheet)")
	cmd.Flags().BoolVar(&asSeries, "series", false, "Load the first column as a series")
	return cmd
}

func (s *Session) newInspectCommand() *cobra.Command {
	var (
		sheet string
		cells bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the table range detected on each sheet of an xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Inspect(s.fs, args[0], sheet, cells, s.out)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Only inspect this worksheet")
	cmd.Flags().BoolVar(&cells, "cells", false, "Also print every non-blank row with typed values")
	return cmd
}

func (s *Session) newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Bind a scalar value (number or text)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.ns.Set(args[0], parser.ParseValue(args[1]))
			return nil
		},
	}
}

func (s *Session) newDelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "del <name>...",
		Short: "Remove names from the session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if !s.ns.Delete(name) {
					return &excelify.UndefinedNameError{Name: name}
				}
			}
			return nil
		},
	}
}

func (s *Session) newWhoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "who",
		Short: "List names in the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := s.ns.Items()
			if len(items) == 0 {
				fmt.Fprintln(s.out, dimStyle.Render("namespace is empty"))
				return nil
			}
			tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			for _, e := range items {
				size := "-"
				if frame, err := excelify.Check(e.Name, e.Value); err == nil {
					size = fmt.Sprintf("%d", frame.Len())
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, models.KindOf(e.Value), size)
			}
			return tw.Flush()
		},
	}
}
