package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/muurk/rpmlog/internal/messages"
	"github.com/muurk/rpmlog/internal/target"
)

// targetsCmd implements the 'targets' command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported target chipsets",
	Long: `List the chipsets rpmlog has name tables for.

Profiles from --profiles (or the config file) are merged over the
built-in ones.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

// opcodesCmd implements the 'opcodes' command
var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "List every message id the decoder understands",
	Args:  cobra.NoArgs,
	RunE:  runOpcodes,
}

func init() {
	targetsCmd.Flags().StringVar(&profilesFile, "profiles", "", "Extra target profile YAML merged over the built-in tables")

	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(opcodesCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	initLogging()

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	catalog, err := target.Builtin()
	if err != nil {
		return err
	}
	if s.Profiles != "" {
		extra, err := target.LoadFile(osFs, s.Profiles)
		if err != nil {
			return err
		}
		catalog = catalog.With(extra)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Target", "Name", "Resources", "Masters", "MPM Interrupts", "Default"})
	for _, p := range catalog.Profiles() {
		def := ""
		if p.ID == s.Target {
			def = "*"
		}
		table.Append([]string{
			p.ID,
			p.Name,
			fmt.Sprint(len(p.Resources)),
			fmt.Sprint(len(p.Masters)),
			fmt.Sprint(len(p.MPMInterrupts)),
			def,
		})
	}
	table.Render()
	return nil
}

func runOpcodes(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	registry, err := messages.Default()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Message", "Group", "Min Words"})
	for _, e := range registry.Entries() {
		table.Append([]string{
			fmt.Sprintf("0x%x", e.Opcode),
			e.Name,
			e.Group.String(),
			fmt.Sprint(e.MinWords),
		})
	}
	table.Render()
	fmt.Printf("%d messages\n", registry.Count())
	return nil
}
