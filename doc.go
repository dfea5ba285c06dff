// Package typos finds minimum-cost word ladders: sequences of dictionary
// words leading from a start word to a target word, each step an edit of as
// few letters as possible.
//
// It exposes three layers:
//
//   - FindShortestPath and Verify: word ladder entry points over an in-memory
//     candidate list.
//   - Search: four interchangeable best-first algorithms (A*, IDA*, fringe
//     search and Dijkstra) generic over node and cost type.
//   - Stepper: iterate best-first search one expansion at a time to drive UIs
//     or debugging tools.
//
// Ladder costs are cost.Vector values built by package word. They rank a
// ladder of many one-letter steps ahead of a shorter ladder with a single
// larger jump.
package typos
