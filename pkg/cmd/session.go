// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/differ"
	"github.com/consensys/go-differ/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session holds everything a command needs once its arguments have been
// processed: the configuration, the differentiation context and the parsed
// expression.
type session struct {
	config Config
	ctx    *differ.Context
	expr   *ast.Node
	stats  *util.PerfStats
}

// Open a session for a command taking a single expression argument.  Usage
// errors exit with status 1, whilst invalid input exits with status 2.
func openSession(cmd *cobra.Command, args []string) *session {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	stats := util.NewPerfStats()
	//
	config, err := sessionConfig(cmd)
	if err != nil {
		exitWithError(err)
	} else if config.Context.MaxNameLength == 0 {
		exitWithError(errors.New("maximum name length must be positive"))
	}
	//
	ctx := differ.NewContext(config.Context)
	//
	parse := ctx.Parse
	//
	if GetFlag(cmd, "prefix") {
		parse = ctx.ParsePrefix
	}
	//
	expr, err := parse(args[0])
	if err != nil {
		exitWithError(err)
	}
	//
	bindVariables(ctx, config)
	//
	return &session{config, ctx, expr, stats}
}

// Assign bound values to variables of the expression.  Bindings for variables
// which do not occur in the expression are ignored.
func bindVariables(ctx *differ.Context, config Config) {
	for _, name := range config.boundNames() {
		if err := ctx.Bind(name, config.Bindings[name]); err != nil {
			log.Warnf("ignoring binding: %v", err)
		}
	}
}

// Evaluate an expression in this session, exiting on a numeric anomaly when
// evaluation is strict.
func (s *session) evaluate(node *ast.Node) float64 {
	if !s.config.Strict {
		return s.ctx.Evaluate(node)
	}
	//
	value, err := s.ctx.CheckedEvaluate(node)
	if err != nil {
		exitWithError(err)
	}
	//
	return value
}

// Determine the slot of a named variable.  When no name is given, the first
// variable of the expression is used.
func (s *session) variable(name string) uint {
	if name == "" && len(s.ctx.Slots()) == 0 {
		exitWithError(errors.New("expression has no variables"))
	} else if name == "" {
		return 0
	}
	//
	index, ok := s.ctx.Variable(name)
	if !ok {
		exitWithError(fmt.Errorf("%w \"%s\"", differ.ErrUnknownVariable, name))
	}
	//
	return index
}

// Write an expression in the format selected by the command's flags.
func (s *session) write(cmd *cobra.Command, node *ast.Node) {
	err := writeExpr(os.Stdout, s.ctx, node, GetString(cmd, "format"))
	//
	if errors.Is(err, ErrUnknownFormat) {
		fmt.Println(err)
		os.Exit(1)
	} else if err != nil {
		exitWithError(err)
	}
}
