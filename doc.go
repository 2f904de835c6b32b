/*
Package docket is a processing engine for project records whose state is
advanced by applying an ordered sequence of actions.

A Project carries a handful of scalar fields (department, funding flag,
budget, completion flag) and an action sequence bound at construction.
Processing applies each action in bind order; each action observes every
mutation made by the ones before it. Actions whose precondition does not
hold (an unfunded completion, a budget below a gate's threshold) apply as
silent no-ops rather than errors.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/docket-run/docket"
		"github.com/docket-run/docket/pkg/domain"
	)

	func main() {
		bridge := domain.NewProject("River Bridge", "Transportation", false, 1000000, []domain.Action{
			domain.ApproveFunding(),
			domain.AdjustBudget(500000),
		})

		registry := domain.NewRegistry()
		registry.Add(bridge)

		eng := docket.New()
		eng.ProcessAll(context.Background(), registry)

		fmt.Println(bridge.Funded(), bridge.Budget()) // true 1.5e+06
	}

Projects and their actions can also be declared in YAML manifests (see
pkg/manifest) and run through the docket CLI, or served over HTTP with
pluggable persistence adapters (memory, Redis, SQLite).
*/
package docket
