package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PAMPAS-Lab/Pywen/pkg/presenter"
	"github.com/PAMPAS-Lab/Pywen/pkg/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage pywen skills",
	Long:  `Inspect the discovered skill catalog, show individual skills, and trigger re-scans.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Long:  `List the resolved skill catalog for the current directory, followed by any discovery errors.`,
	Run: func(cmd *cobra.Command, _ []string) {
		result := discoverForCwd(cmd, false)
		printResult(result)
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill's full instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := discoverForCwd(cmd, false)
		catalog := skills.NewCatalog(result)

		skill, ok := catalog.Lookup(args[0])
		if !ok {
			presenter.Error(fmt.Errorf("skill %q not found", args[0]), "Skill not found")
			os.Exit(1)
		}

		presenter.Section(skill.Name)
		presenter.Info(fmt.Sprintf("Scope:       %s", skill.Scope))
		presenter.Info(fmt.Sprintf("Directory:   %s", skill.Path))
		presenter.Info(fmt.Sprintf("Description: %s", skill.Description))
		presenter.Separator()
		fmt.Println(skill.Body)
	},
}

var skillPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the skill roots searched for the current directory",
	Run: func(cmd *cobra.Command, _ []string) {
		discovery, err := skills.NewDiscovery()
		if err != nil {
			presenter.Error(err, "Failed to initialize skill discovery")
			os.Exit(1)
		}

		cwd, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SCOPE\tPATH")
		for _, root := range discovery.Roots(cwd) {
			fmt.Fprintf(tw, "%s\t%s\n", root.Scope, root.Path)
		}
		tw.Flush()
	},
}

var skillReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Re-scan skills for the current directory",
	Long:  `Discard the cached catalog for the current directory and run a fresh discovery pass.`,
	Run: func(cmd *cobra.Command, _ []string) {
		result := discoverForCwd(cmd, true)
		presenter.Success(fmt.Sprintf("Reloaded %d skill(s)", len(result.Skills)))
		printResult(result)
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillPathsCmd)
	skillCmd.AddCommand(skillReloadCmd)
	rootCmd.AddCommand(skillCmd)
}

func discoverForCwd(cmd *cobra.Command, reload bool) *skills.Result {
	ctx := cmd.Context()

	manager, enabled := skills.Initialize(ctx)
	if !enabled {
		presenter.Info("Skills are disabled")
		os.Exit(0)
	}

	cwd, err := os.Getwd()
	if err != nil {
		presenter.Error(err, "Failed to determine working directory")
		os.Exit(1)
	}

	var result *skills.Result
	if reload {
		result = manager.Reload(ctx, cwd)
	} else {
		result = manager.SkillsForCwd(ctx, cwd)
	}
	return skills.FilterByAllowlist(result, skills.ConfigFromViper().Allowed)
}

func printResult(result *skills.Result) {
	if len(result.Skills) == 0 {
		presenter.Info("No skills discovered")
	} else {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSCOPE\tDIRECTORY\tDESCRIPTION")
		for _, skill := range result.Skills {
			description := skill.Description
			if len(description) > 60 {
				description = description[:57] + "..."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, skill.Scope, skill.Path, description)
		}
		tw.Flush()
	}

	for _, discErr := range result.Errors {
		presenter.Warning(discErr.Error())
	}
	if result.Collisions > 0 {
		presenter.Info(fmt.Sprintf("%d skill(s) shadowed by higher-precedence scopes", result.Collisions))
	}
}
