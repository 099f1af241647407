package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler cancels the run on the first SIGINT/SIGTERM and
// exits on the second. The returned func stops listening.
func SetupInterruptHandler(cancel context.CancelFunc, out io.Writer) (stop func()) {
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
		case <-done:
			return
		}

		fmt.Fprintln(out, "\nInterrupt received. Stopping...")
		cancel()

		select {
		case <-sig:
			fmt.Fprintln(out, "\nExiting due to interrupt.")
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
