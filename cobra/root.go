/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package cobra wires the embedder CLI's shared configuration flag and
// error-to-exit-code mapping on top of spf13/cobra. cmd/hammerctl builds
// its command tree against this root.
package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nabbar/hammer/herr"
)

// NewRoot builds the bare root command with the shared --config flag.
// Subcommands are attached by the caller via cmd.AddCommand.
func NewRoot(use, short string) (*cobra.Command, *string) {
	var configPath string

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the runtime configuration file")

	return root, &configPath
}

// ExitCode maps a herr.Kind to a process exit code: 0 for OK, otherwise
// 1 + the kind's ordinal, so distinct failure kinds are distinguishable
// from the shell without parsing stderr.
func ExitCode(kind herr.Kind) int {
	if kind == herr.OK {
		return 0
	}
	return 1 + int(kind)
}

// KindError renders kind as a cobra-friendly error, so RunE can just
// `return cobra.KindError(kind, "opening image")`.
func KindError(kind herr.Kind, action string) error {
	if kind == herr.OK {
		return nil
	}
	return fmt.Errorf("%s: %s", action, kind)
}
