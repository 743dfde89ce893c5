// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_wheel.go — Wheel(n) constructor.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Rim: Cycle(n-1) on the first n-1 vertices of the block.
//   • Hub: the last vertex of the block; spokes emitted rim-ascending.

package builder

import "fmt"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		rim := el.NumVertices()
		if err := Cycle(n-1)(el, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := el.AddVertices(1)
		for i := 0; i < n-1; i++ {
			el.AddEdge(hub, rim+i, cfg.weight())
		}

		return nil
	}
}
