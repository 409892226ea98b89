package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pickd/internal/config"
	"pickd/internal/errors"
	"pickd/internal/log"
	"pickd/pkg/picker"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		cfgFile     string
		foldersOnly bool
		ext         string
		pattern     string
		prompt      string
		noReport    bool
		noClear     bool
		maxRows     int
		startDir    string
		themeName   string
		allowCancel bool
		debug       bool
	)

	rootCmd := &cobra.Command{
		Use:   "pickd",
		Short: "An interactive file and folder picker for the terminal",
		Long: `Pickd opens a keyboard-driven picker over a directory tree.

Navigate with the arrow keys or j/k, page with left/right or h/l, descend
into a folder with Space and confirm a selection with Enter. The chosen
path is printed to stdout, so the tool composes in shells:

    cd "$(pickd --folders --allow-cancel)"`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)

			var cfg *config.Config
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("using default settings: %v", err)
				cfg = config.New()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Flags override config-file values.
			if prompt == "" {
				prompt = cfg.Picker.Prompt
			}
			if startDir == "" {
				startDir = cfg.Picker.StartDir
			}
			if maxRows == 0 {
				maxRows = cfg.Picker.MaxRows
			}
			if themeName == "" {
				themeName = cfg.Theme.Name
			}

			filter, err := buildFilter(foldersOnly, ext, pattern)
			if err != nil {
				return err
			}

			var theme picker.Theme
			switch themeName {
			case "", "color":
				theme = picker.NewColorTheme()
			case "simple":
				theme = picker.Simple{}
			default:
				return errors.Newf("unknown theme: %q", themeName)
			}

			p := picker.NewWithTheme(filter, theme)
			if prompt != "" {
				p.WithPrompt(prompt)
			}
			if noReport {
				p.Report(false)
			}
			if noClear {
				p.Clear(false)
			}
			if maxRows > 0 {
				p.MaxLength(maxRows)
			}
			if startDir != "" {
				p.InitialFolder(startDir)
			}

			log.Debugf("picker starting in %q", startDir)

			if allowCancel {
				path, ok, err := p.InteractOpt()
				if err != nil {
					return err
				}
				if !ok {
					log.Debugf("picker cancelled")
					os.Exit(1)
				}
				fmt.Println(path)
				return nil
			}

			path, err := p.Interact()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pickd/config.yaml)")
	rootCmd.Flags().BoolVar(&foldersOnly, "folders", false, "offer directories only")
	rootCmd.Flags().StringVar(&ext, "ext", "", "offer directories plus files with this extension (e.g. jpg)")
	rootCmd.Flags().StringVar(&pattern, "pattern", "", "offer directories plus files matching this glob (e.g. '*.md')")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "prompt line shown above the listing")
	rootCmd.Flags().BoolVar(&noReport, "no-report", false, "suppress the confirmation line after selection")
	rootCmd.Flags().BoolVar(&noClear, "no-clear", false, "leave the widget on screen after the interaction")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", 0, "cap on visible rows per page (default: fit the terminal)")
	rootCmd.Flags().StringVar(&startDir, "dir", "", "directory to open in (default: current directory)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme: simple or color")
	rootCmd.Flags().BoolVar(&allowCancel, "allow-cancel", false, "let Escape or q cancel the picker (exit status 1)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.MarkFlagsMutuallyExclusive("folders", "ext", "pattern")

	return rootCmd
}

// buildFilter maps the filter flags onto a picker filter.
func buildFilter(foldersOnly bool, ext, pattern string) (picker.Filter, error) {
	switch {
	case foldersOnly:
		return picker.Folders(), nil
	case ext != "":
		// Accept ".jpg" and "JPG" alike on the command line.
		return picker.WithExtension(strings.ToLower(strings.TrimPrefix(ext, "."))), nil
	case pattern != "":
		return picker.WithPattern(pattern), nil
	default:
		return picker.Any(), nil
	}
}
