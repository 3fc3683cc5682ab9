package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/PineappleTF/AssetInstaller/vdf"
)

var (
	dumpFormat    string
	dumpEncoding  string
	dumpLowerKeys bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Parse a KeyValues file and print the tree as JSON or YAML",
	Long: `dump parses any KeyValues file (libraryfolders.vdf, appmanifest_*.acf,
localization files, ...) and prints the tree. Duplicate keys are resolved
to the last occurrence, matching dictionary overwrite semantics.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "json", "output format (json or yaml)")
	dumpCmd.Flags().StringVar(&dumpEncoding, "encoding", "", "character set of the input file (default UTF-8)")
	dumpCmd.Flags().BoolVar(&dumpLowerKeys, "lower-keys", false, "lowercase every key before output")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	var p vdf.Parser
	if dumpLowerKeys {
		p.KeyFunc = strings.ToLower
	}
	if dumpEncoding != "" {
		enc, err := htmlindex.Get(dumpEncoding)
		if err != nil {
			return fmt.Errorf("unknown encoding %q: %w", dumpEncoding, err)
		}
		p.Encoding = enc
	}

	root, err := p.ParseFile(args[0])
	if err != nil {
		return err
	}
	tree := root.Map()

	switch dumpFormat {
	case "json":
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(tree)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", dumpFormat)
	}
	return nil
}
