package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCmd is the parent command for cache maintenance.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the translation cache",
}

// cacheClearCmd flushes every cached translation.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		t, err := rt.translator()
		if err != nil {
			return err
		}

		if err := t.ClearCache(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		rt.logger.Info("Translation cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}
