// Package cycles detects the loops of a maze and reconstructs one closed
// cell sequence per loop, relative to a breadth-first spanning tree.
//
// A single BFS pass maintains predecessor and distance tables. Every
// connection that is not a tree edge is reported exactly once, from the side
// that reaches an already processed cell; the cycle is rebuilt by walking
// both predecessor chains back to their common ancestor.
//
// The result is a fundamental cycle basis, not every simple cycle: breaking
// one connection of each reported cycle leaves the reached component acyclic.
//
// Complexity:
//
//   - Time:   O(W×H×L + C·L)   (C = #cycles, L = average cycle length)
//   - Memory: O(W×H×L)         (predecessor and distance tables)
package cycles
