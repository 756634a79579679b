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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	hmcobra "github.com/nabbar/hammer/cobra"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/metadata"
)

func newLoadCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "load <image>",
		Short: "load a module image and print a summary of its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kind := loadConfigOrDefault(*configPath)
			if kind != herr.OK {
				return hmcobra.KindError(kind, "loading configuration")
			}
			log := loggerFromConfig(cfg)

			loader, kind := metadata.OpenImage(args[0])
			if kind != herr.OK {
				log.Kind(kind, "opening image")
				return hmcobra.KindError(kind, "opening image")
			}
			defer loader.Dispose()

			reg, kind := metadata.Load(loader)
			if kind != herr.OK {
				log.Kind(kind, "loading registry")
				return hmcobra.KindError(kind, "loading registry")
			}

			classCount, methodCount := 0, 0
			for _, m := range reg.Modules() {
				classCount += len(m.Classes())
				for _, c := range m.Classes() {
					methodCount += len(c.Methods())
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "modules=%d classes=%d methods=%d\n",
				len(reg.Modules()), classCount, methodCount)
			return nil
		},
	}
}
