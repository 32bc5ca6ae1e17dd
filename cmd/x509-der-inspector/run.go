// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/cli"
	"github.com/H0llyW00dzZ/x509-der-inspector/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-der-inspector/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Buffered so the goroutine never blocks after a signal wins the select
	done := make(chan error, 1)

	go func() {
		err := cli.Execute(ctx, version, log)
		select {
		case done <- err:
		case <-ctx.Done():
			log.Println("Operation cancelled, cleaning up...")
		}
	}()

	exitCode := 0
	select {
	case <-sigs:
		log.Println("\nReceived termination signal. Exiting...")
		cancel()
		exitCode = 130
	case err := <-done:
		// Cobra already printed the error
		if err != nil {
			exitCode = 1
		} else if cli.OperationPerformed {
			log.Println("Inspection completed successfully.")
		}
	}

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
