// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/runctl/runctl/internal/cacheutil"
	"github.com/runctl/runctl/internal/command"
	"github.com/runctl/runctl/internal/config"
	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return command.ExitAppError
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return command.ExitCodeFor(err)
	}

	return command.ExitOK
}

func realMain() int {
	log.InitLogger()

	// Interrupts propagate to the running step and stop the dispatch.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return command.ExitOK
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processSetArgs(args)
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(ctx, args)
}

// processSetArgs expands an @set argument into the KEY=VALUE assignments
// stored under "<command>.<set>" in the config file, at the @set position.
// `runctl run terraform-plan @staging` becomes `runctl run terraform-plan
// ENV=staging ...` for a config holding run.staging.
func processSetArgs(args []string) []string {
	idx := 2
	removeIdx := -1
	set := ""
	for i, a := range args[min(idx, len(args)):] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	// Remove the @set argument.
	args = append(args[:removeIdx], args[removeIdx+1:]...)

	// Expand the set arguments at the removeIdx position.
	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
		removeIdx += len(parts)
	}
	return args
}
