// Package lvlpath is an in-memory engine for greedy path extension and
// branch classification over generic, directed, bidirectional graphs —
// the traversal core behind contig extension in de-Bruijn-style
// sequence-assembly pipelines.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic library that brings together:
//		• Core primitives: a generic bidirectional digraph capability,
//		  a reference adjacency-list implementation, and a double-ended Path
//		• Reachability probing: bounded, cycle-safe look-ahead searches
//		• Branch classification: dead end / unique extension / branching
//		  point, with short-spur filtering (trimLen)
//		• Path extension: a stateful, cycle-detecting driver with a closed
//		  eight-way outcome enum
//
// ✨ Why choose lvlpath?
//
//   - Deterministic – same graph, same seed path, same result, always
//   - Generic – any comparable vertex descriptor, any graph that can
//     enumerate in- and out-neighbors
//   - Allocation-light – iterative probing, no recursion, no hidden state
//   - Extensible – adapters bridge external graph libraries (see gonumgraph)
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Digraph capability, reference DiGraph, double-ended Path
//	extend/     — look-ahead prober, branch classifier, path extender
//	builder/    — deterministic fixture topologies (chains, cycles, forks)
//	gonumgraph/ — adapter exposing gonum directed graphs as core.Digraph
//
// Quick ASCII example:
//
//	    A──▶B──▶C──▶D
//	             │
//	             ▼
//	             s        (short spur, filtered by trimLen)
//
//	extending [A] forward walks the chain to D and reports the spur-free
//	outcome EXTENDED_TO_DEAD_END.
//
// Dive into the package docs of extend/ for the traversal rules, outcome
// codes, and the exact spur-filtering semantics.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
