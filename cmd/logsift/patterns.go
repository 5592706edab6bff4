package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsift/logsift/pkg/config"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the signature registry in evaluation order",
	Long: `List the error signatures in registry order. Order is significant:
when a line matches more than one signature, the earliest one wins.`,
	RunE: runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg := config.Global().Get()
	if cmd.Flags().Changed("patterns") {
		cfg.Patterns.File = patternsFile
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	for i, sig := range registry.Signatures() {
		fmt.Printf("%2d. %-22s %s\n", i+1, sig.Name, sig.Pattern())
	}

	return nil
}
