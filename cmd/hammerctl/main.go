/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Command hammerctl is the embedder CLI: it loads a runtime image, or serves
// accepted connections through a worker pool, logging everything the core
// packages themselves stay silent about.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hmcobra "github.com/nabbar/hammer/cobra"
	"github.com/nabbar/hammer/config"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/logger"
)

func main() {
	root, configPath := hmcobra.NewRoot("hammerctl", "runtime core CLI")
	root.AddCommand(newLoadCommand(configPath))
	root.AddCommand(newServeCommand(configPath))
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfigOrDefault(path string) (*config.Config, herr.Kind) {
	if path == "" {
		return &config.Config{
			ListenAddress:  "127.0.0.1",
			ListenPort:     8080,
			WorkerPool:     4,
			LogLevel:       "info",
			LogFormat:      "text",
			MetricsAddress: "127.0.0.1:9090",
		}, herr.OK
	}
	return config.Load(path)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print build metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "hammerctl (dev build)")
			return nil
		},
	}
}

func loggerFromConfig(cfg *config.Config) *logger.Logger {
	return logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}
