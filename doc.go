// Package lvsearch is a small toolkit for least-cost search through implicit
// state spaces: you describe where you start, how to move and what counts as
// done, and it hands back the cheapest sequence of actions that gets there.
//
// 🚀 What is lvsearch?
//
//	A generic, dependency-light search library plus a handful of classic puzzles:
//		• Uniform-cost search (FindPath) with decrease-key and FIFO tie-breaking
//		• Breadth-first search (ShortestPath) for unit-cost problems
//		• Limits & hooks: MaxExpansions, MaxDepth, MaxCost, context, OnExpand/OnEnqueue
//		• Puzzles: water jugs, bridge & torch, missionaries & cannibals, subway rides, weighted mazes
//
// ✨ Why choose lvsearch?
//
//   - States are any comparable Go value, actions are anything at all
//   - "No solution" is an answer (Result.Found == false), not an error
//   - Deterministic: equal-cost ties resolve by discovery order
//   - Every call is independent and safe to run concurrently
//
// Under the hood, everything is organized under a few subpackages:
//
//	search/           FindPath, ShortestPath, Path, Result & options
//	puzzles/pour      two-jug measuring
//	puzzles/bridge    bridge and torch, minimal total time
//	puzzles/river     missionaries and cannibals
//	puzzles/subway    fewest-stop rides on a YAML-described network
//	puzzles/maze      cheapest route through a weighted grid
//	cmd/lvsearch      command-line front end (cobra)
//
// Quick example:
//
//	res, err := search.FindPath(start, successors, isGoal, cost)
//	if err != nil {
//		return err
//	}
//	if !res.Found {
//		fmt.Println("no solution")
//	}
//	fmt.Println(res.Path, res.Cost)
package lvsearch
