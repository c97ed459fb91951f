// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command codelog inserts, lists, highlights, comments, uncomments, edits,
// and removes debug log statements in source files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/document"
	"github.com/petar-djukic/codelog/internal/git"
	"github.com/petar-djukic/codelog/internal/log"
	"github.com/petar-djukic/codelog/internal/symbols"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type app struct {
	v      *viper.Viper
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	logger log.Logger
	cfg    config.Config
	root   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), fs: afero.NewOsFs(), stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "codelog",
		Short:         "Generate and manage debug log statements",
		Long:          "codelog renders language-appropriate log statements from templates and finds, comments, edits, or removes them again.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default .codelog.yaml in the workdir)")
	pf.String("workdir", ".", "Project directory")
	pf.String("language", "", "Language identifier (detected from the file extension when empty)")
	pf.String("log-command", "", "Log command override")
	pf.BoolP("verbose", "v", false, "Log progress to stderr")
	pf.Bool("debug", false, "Log debug details to stderr")

	// Bind flags to viper.
	a.v.BindPFlag("config", pf.Lookup("config"))
	a.v.BindPFlag("workdir", pf.Lookup("workdir"))
	a.v.BindPFlag("language", pf.Lookup("language"))
	a.v.BindPFlag("logCommand", pf.Lookup("log-command"))
	a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	a.v.BindPFlag("debug", pf.Lookup("debug"))

	// Env vars: CODELOG_LOGCOMMAND, CODELOG_FILES_INCLUDEFILEPATH, etc.
	a.v.SetEnvPrefix("CODELOG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		newInsertCmd(a),
		newSnippetCmd(a),
		newListCmd(a),
		newFilesCmd(a),
		newEntriesCmd(a),
		newHighlightCmd(a),
		newOpCmd(a, document.OpComment, "Comment out log statements"),
		newOpCmd(a, document.OpUncomment, "Uncomment log statements"),
		newOpCmd(a, document.OpRemove, "Delete log statements"),
		newEditCmd(a),
		newConfigCmd(a),
		newWatchCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup configures logging, reads the config file, and resolves the project
// root.
func (a *app) setup() error {
	a.logger = log.NewText(a.stderr, a.v.GetBool("verbose"), a.v.GetBool("debug"))
	log.SetDefault(a.logger)

	workdir, err := filepath.Abs(a.v.GetString("workdir"))
	if err != nil {
		return fmt.Errorf("resolving workdir: %w", err)
	}

	file := a.v.GetString("config")
	if file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName(".codelog")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(workdir)
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		a.logger.Debug("no config file, using defaults")
	} else {
		a.logger.Debug("loaded config file", "path", a.v.ConfigFileUsed())
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.root = git.ProjectRoot(workdir)
	a.logger.Debug("resolved project root", "root", a.root)
	return nil
}

func (a *app) runner() *document.Runner {
	return document.NewRunner(document.Deps{
		Fs:      a.fs,
		Root:    a.root,
		Symbols: symbols.NewRouter(),
		Logger:  a.logger,
	})
}

func (a *app) open(r *document.Runner, path string) (*document.Document, error) {
	return r.Open(path, a.v.GetString("language"))
}

// newConfigCmd creates the "config" command.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print codelog version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "codelog %s\n", version)
		},
	}
}
