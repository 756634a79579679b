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
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/nabbar/hammer/alloc"
	hmcobra "github.com/nabbar/hammer/cobra"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/httpreq"
	"github.com/nabbar/hammer/logger"
	"github.com/nabbar/hammer/socket"
	"github.com/nabbar/hammer/worker"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "accept connections and parse one HTTP request per connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kind := loadConfigOrDefault(*configPath)
			if kind != herr.OK {
				return hmcobra.KindError(kind, "loading configuration")
			}
			log := loggerFromConfig(cfg)

			registry := prometheus.NewRegistry()
			readAllocs := prometheus.NewCounter(prometheus.CounterOpts{
				Name: "hammer_request_buffer_allocations_total",
				Help: "Number of per-connection HTTP read-buffer allocations.",
			})
			registry.MustRegister(readAllocs)
			reqAlloc := alloc.NewStats(alloc.NewSystem(), readAllocs)

			metricsSrv := &http.Server{
				Addr:    cfg.MetricsAddress,
				Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			}
			go func() {
				if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Kind(herr.PlatformDependent, "metrics server: "+err.Error())
				}
			}()
			defer metricsSrv.Shutdown(context.Background())

			pool, kind := worker.NewPool(cfg.WorkerPool, handleConnection(log, reqAlloc), nil)
			if kind != herr.OK {
				return hmcobra.KindError(kind, "creating worker pool")
			}

			srv, kind := socket.Listen(cfg.ListenAddress, cfg.ListenPort, cfg.SocketTimeout)
			if kind != herr.OK {
				return hmcobra.KindError(kind, "listening")
			}
			log.Kind(herr.OK, "listening on "+srv.Addr().String())

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			accepted := make(chan struct{})

			go func() {
				defer close(accepted)
				for {
					conn, kind := srv.Accept()
					if kind == herr.Timeout {
						continue
					}
					if kind != herr.OK {
						log.Kind(kind, "accept failed, shutting down")
						return
					}
					if kind := pool.Enqueue(conn); kind != herr.OK {
						log.Kind(kind, "enqueue failed")
						_ = conn.Close()
					}
				}
			}()

			select {
			case <-stop:
			case <-accepted:
			}

			_ = srv.Close()
			pool.Stop(true)
			if waitKind, waitErr := pool.Wait(cfg.SocketTimeout); waitKind != herr.OK {
				log.WithField("kind", waitKind.String()).WithError(waitErr).Error("worker pool did not join cleanly")
			}
			_ = pool.Dispose()
			return nil
		},
	}
}

// handleConnection parses exactly one HTTP request off conn and logs its
// method and URL. This is the CLI's own business logic, not a core
// component - the core only supplies the socket, the worker pool, and the
// parser.
func handleConnection(log *logger.Logger, reqAlloc alloc.Allocator) worker.Func[*socket.Socket] {
	return func(conn *socket.Socket) herr.Kind {
		defer conn.Close()

		// Correlates this connection's log lines; has no bearing on parsing
		// or dispatch, it only makes concurrent worker output readable.
		connID := uuid.New().String()

		req, kind := httpreq.ParseWithAllocator(conn.Reader(), httpreq.DefaultMaxHeadersSize, 4096, reqAlloc)
		if kind != herr.OK {
			log.WithField("conn", connID).WithField("kind", kind.String()).Error("parsing request")
			return herr.OK
		}
		log.WithField("conn", connID).WithField("method", req.Method).WithField("url", req.URL).Info("handled request")
		return herr.OK
	}
}
