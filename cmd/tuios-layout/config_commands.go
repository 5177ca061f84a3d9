package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuios-layout configuration",
		Long:  `Manage the tuios-layout configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration in use, after defaults have been
filled in and validation has passed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	var force bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults(force)
		},
	}
	configResetCmd.Flags().BoolVarP(&force, "yes", "y", false, "Do not ask for confirmation")

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List player keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	configCmd.AddCommand(configPathCmd, configShowCmd, configResetCmd, keybindsCmd)
	return configCmd
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func showConfig() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, path)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults(force bool) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", path)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not stat config file: %w", err)
	}

	if err := config.Save(config.DefaultConfig(), path); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", path)
	return nil
}

// listKeybindings prints the player keybindings in a table
func listKeybindings() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry := config.NewKeybindRegistry(cfg)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	rows := [][]string{}
	for _, b := range registry.Bindings() {
		rows = append(rows, []string{b.Key, b.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Keys", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	lipgloss.Println()
	lipgloss.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("Player Keybindings"))
	lipgloss.Println(t.Render())
	return nil
}
