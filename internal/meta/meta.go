// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/runctl/runctl/internal/config"
	"github.com/runctl/runctl/internal/vars"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded configuration, context, the variable environment
// snapshot taken at startup, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Vars        vars.Environment
	StartingDir string
}
