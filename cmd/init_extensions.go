/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution, after flags are parsed. Configuration is loaded
// once and shared with every extension through the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/internal/config"
)

// standaloneCommands lists commands that bypass configuration loading.
// Built from the "help" builtins plus extension-declared standalone commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip Init.
// Extensions declare their own through extension.Standalone.
func buildStandaloneCommands() map[string]bool {
	cmds := extension.StandaloneCommands()
	cmds["help"] = true
	cmds["completion"] = true
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// Context returns the shared extension context, or nil before initialisation.
func Context() extension.Context {
	return extContext
}

// initExtensions loads configuration and injects the shared context into
// every Initializable extension. Runs at most once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		extContext = extension.NewContext(cfg, Strict())

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		standaloneCommands = buildStandaloneCommands()
	})
}
