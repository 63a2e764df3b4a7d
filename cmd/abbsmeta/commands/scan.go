package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/abbsmeta/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <tree>",
		Short: "Scan a tree and write its package metadata to the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to get working directory")
			}

			flags := cmd.Flags()
			configPath, _ := flags.GetString("config")
			basePath, _ := flags.GetString("basepath")
			database, _ := flags.GetString("dbfile")
			category, _ := flags.GetString("category")
			workers, _ := flags.GetInt("workers")
			timeout, _ := flags.GetDuration("timeout")
			from, _ := flags.GetString("from")
			to, _ := flags.GetString("to")
			fastDiff, _ := flags.GetBool("fast-diff")
			noSync, _ := flags.GetBool("no-sync")
			reset, _ := flags.GetBool("reset")
			noVariants, _ := flags.GetBool("no-variants")

			report, err := c.app.Scan(cmd.Context(), app.ScanOptions{
				Tree:       args[0],
				Cwd:        cwd,
				ConfigPath: configPath,
				BasePath:   basePath,
				Database:   database,
				Category:   category,
				Workers:    workers,
				Timeout:    timeout,
				From:       from,
				To:         to,
				FastDiff:   fastDiff,
				NoSync:     noSync,
				Reset:      reset,
				NoVariants: noVariants,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), renderReport(args[0], report))
			return err
		},
	}

	cmd.Flags().StringP("basepath", "p", "", "Directory containing the trees")
	cmd.Flags().StringP("dbfile", "d", "", "Database file or postgres:// DSN")
	cmd.Flags().StringP("category", "c", "", "Only scan categories whose name starts or ends with this")
	cmd.Flags().IntP("workers", "j", 0, "Number of concurrent evaluations")
	cmd.Flags().Duration("timeout", 0, "Time limit for evaluating one package")
	cmd.Flags().String("from", "", "Old revision for an incremental scan")
	cmd.Flags().String("to", "", "New revision for an incremental scan")
	cmd.Flags().Bool("fast-diff", false, "Diff the whole tree once instead of once per package")
	cmd.Flags().Bool("no-sync", false, "Don't pull the tree before scanning")
	cmd.Flags().Bool("reset", false, "Clear the database before writing")
	cmd.Flags().Bool("no-variants", false, "Only consider the autobuild directory of each package")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}
