package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"book_themes/internal/db"
	"book_themes/internal/workspace"
)

var workspaceDir string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workspace with default settings and run database",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&workspaceDir, "dir", "", "workspace directory (default: ~/"+workspace.BaseDirName+")")
}

func runInit(cmd *cobra.Command, args []string) error {
	var (
		root string
		err  error
	)
	if workspaceDir != "" {
		root, err = workspace.EnsureAt(workspaceDir)
	} else {
		root, err = workspace.EnsureDefault()
	}
	if err != nil {
		return wrapf(err, "workspace initialization failed")
	}

	conn, err := db.Open(workspace.DatabasePath(root))
	if err != nil {
		return err
	}
	if err := conn.Close(); err != nil {
		return wrapf(err, "close database")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at: %s\n", filepath.Clean(root))
	fmt.Fprintf(cmd.OutOrStdout(), "Settings: %s\n", workspace.SettingsPath(root))
	return nil
}
