package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"school-admin/core/translate"

	"github.com/spf13/cobra"
)

var (
	translateTo      string
	translateFrom    string
	translateFields  []string
	translateNoCache bool
)

// translateCmd is the parent command for translation.
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text or JSON documents",
}

// translateTextCmd translates a single string.
var translateTextCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "Translate a single text",
	Args:  cobra.ExactArgs(1),
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

		out := t.Translate(cmd.Context(), args[0], translateOptions(rt.cfg.Translation.DefaultTarget))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// translateDataCmd translates the strings of a JSON document.
var translateDataCmd = &cobra.Command{
	Use:   "data <file.json|->",
	Short: "Translate the strings of a JSON document",
	Long: `Translate the string values of a JSON document read from a file, or from stdin when the
argument is "-". With --fields only values under those keys are translated, at any depth.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("invalid JSON input: %w", err)
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		t, err := rt.translator()
		if err != nil {
			return err
		}

		result := t.TranslateData(cmd.Context(), data, translateOptions(rt.cfg.Translation.DefaultTarget))
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	},
}

func init() {
	translateCmd.AddCommand(translateTextCmd, translateDataCmd)

	translateCmd.PersistentFlags().StringVar(&translateTo, "to", "", "Target language code (defaults to translation.default_target)")
	translateCmd.PersistentFlags().StringVar(&translateFrom, "from", "", "Source language code (auto-detect when empty)")
	translateCmd.PersistentFlags().BoolVar(&translateNoCache, "no-cache", false, "Bypass the translation cache")
	translateDataCmd.Flags().StringSliceVar(&translateFields, "fields", nil, "Only translate values under these keys")

	RootCmd.AddCommand(translateCmd)
}

func translateOptions(defaultTarget string) translate.Options {
	target := translateTo
	if target == "" {
		target = defaultTarget
	}
	return translate.Options{
		Target:   target,
		Source:   translateFrom,
		Fields:   translateFields,
		UseCache: !translateNoCache,
	}
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return raw, nil
}
