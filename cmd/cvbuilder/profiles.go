package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coseus/cvbuilder/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage domain profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available domain profiles",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a domain profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

var profilesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in profile to the profiles directory",
	Long:  "Write the built-in cyber security profile as a YAML file so it can be copied and edited into new domain profiles.",
	RunE:  runProfilesInit,
}

func init() {
	profilesCmd.AddCommand(profilesListCmd, profilesShowCmd, profilesInitCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// An absent directory just means only the built-in exists.
	ids, err := profile.List(cfg.ProfilesDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	def := profile.Default()
	seen := false
	for _, id := range ids {
		marker := " "
		if id == cfg.ProfileID {
			marker = "*"
		}
		if id == def.ID {
			seen = true
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, id)
	}
	if !seen {
		marker := " "
		if def.ID == cfg.ProfileID {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s (built-in)\n", marker, def.ID)
	}
	return nil
}

func runProfilesShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	id := args[0]
	p, err := profile.LoadFromDir(cfg.ProfilesDir, id)
	if err != nil {
		if def := profile.Default(); id == def.ID {
			p = def
		} else {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Profile: %s (%s)\n", p.ID, p.Title)
	if len(p.JobTitles) > 0 {
		fmt.Fprintf(os.Stdout, "Job titles: %s\n", strings.Join(p.JobTitles, ", "))
	}
	fmt.Fprintf(os.Stdout, "Keywords: %d\n", len(p.FlattenKeywords()))
	fmt.Fprintf(os.Stdout, "Action verbs: %d\n", len(p.ActionVerbs))
	fmt.Fprintf(os.Stdout, "Metric hints: %s\n", strings.Join(p.MetricHints(), ", "))
	return nil
}

func runProfilesInit(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	def := profile.Default()
	path := filepath.Join(cfg.ProfilesDir, def.ID+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("profile already exists: %s", path)
	}
	if err := profile.Save(path, def); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote profile: %s\n", path)
	return nil
}
