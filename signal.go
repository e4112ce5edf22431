// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// shutdownRequestChannel lets code inside the process ask for the same
// shutdown an interrupt signal would trigger.
var shutdownRequestChannel = make(chan struct{})

// interruptSignals are the signals that stop the daemon.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// interruptContext returns a child of parent that is cancelled on the first
// interrupt signal or shutdown request.  Later signals are only logged.
func interruptContext(parent context.Context, log zerolog.Logger) context.Context {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, interruptSignals...)

	go func() {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("Received signal. Shutting down...")
		case <-shutdownRequestChannel:
			log.Info().Msg("Shutdown requested. Shutting down...")
		case <-parent.Done():
			signal.Stop(sigCh)
			cancel()
			return
		}
		cancel()

		for {
			select {
			case sig := <-sigCh:
				log.Info().Str("signal", sig.String()).Msg("Received signal. Already shutting down...")
			case <-shutdownRequestChannel:
				log.Info().Msg("Shutdown requested. Already shutting down...")
			}
		}
	}()

	return ctx
}
