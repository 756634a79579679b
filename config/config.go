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

// Package config loads the process-wide runtime configuration (image path,
// listen endpoint, socket timeout, worker pool size, log level/format) via
// viper, validating it against the core's own error taxonomy.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/nabbar/hammer/file"
	"github.com/nabbar/hammer/herr"
)

// Config is the validated, immutable runtime configuration.
type Config struct {
	ImagePath      string
	ListenAddress  string
	ListenPort     int
	SocketTimeout  time.Duration
	WorkerPool     int
	LogLevel       string
	LogFormat      string
	MetricsAddress string
}

func defaults(v *viper.Viper) {
	v.SetDefault("listen.address", "127.0.0.1")
	v.SetDefault("listen.port", 8080)
	v.SetDefault("socket.timeout", "30s")
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.address", "127.0.0.1:9090")
}

// Load reads path (viper auto-detects YAML/JSON/TOML by extension),
// applies defaults for everything unset, and validates the result. A
// missing file maps to NotFound; a file that fails to parse maps to
// InvalidData; an out-of-range value maps to InvalidArgument.
func Load(path string) (*Config, herr.Kind) {
	if kind := file.CheckReadable(path); kind != herr.OK {
		return nil, kind
	}

	v := viper.New()
	defaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, herr.InvalidData
	}

	cfg := &Config{
		ImagePath:      v.GetString("image.path"),
		ListenAddress:  v.GetString("listen.address"),
		ListenPort:     v.GetInt("listen.port"),
		SocketTimeout:  v.GetDuration("socket.timeout"),
		WorkerPool:     v.GetInt("worker.pool_size"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
		MetricsAddress: v.GetString("metrics.address"),
	}
	if kind := cfg.validate(); kind != herr.OK {
		return nil, kind
	}
	return cfg, herr.OK
}

func (c *Config) validate() herr.Kind {
	if c.WorkerPool <= 0 {
		return herr.InvalidArgument
	}
	if c.ListenPort < 0 || c.ListenPort > 65535 {
		return herr.InvalidArgument
	}
	if c.SocketTimeout < 0 {
		return herr.InvalidArgument
	}
	return herr.OK
}
