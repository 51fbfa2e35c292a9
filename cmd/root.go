/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tailsweep.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wongjn/tailsweep/cmd/check"
	"github.com/wongjn/tailsweep/cmd/classes"
	"github.com/wongjn/tailsweep/cmd/compile"
	"github.com/wongjn/tailsweep/cmd/mcp"
	"github.com/wongjn/tailsweep/cmd/migrate"
	"github.com/wongjn/tailsweep/cmd/version"
	"github.com/wongjn/tailsweep/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tailsweep",
	Short: "Rewrite arbitrary utility values to named design tokens",
	Long: `tailsweep finds utility classes carrying arbitrary values and rewrites
them to named theme equivalents when the computed styles are
byte-identical.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default .config/tailsweep.{yaml,yml,json})")
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "Class prefix, overriding the config file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(classes.Cmd)
	rootCmd.AddCommand(compile.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
