// Package mcdm is your in-memory toolbox for Multi-Criteria Decision Making:
// normalize a decision matrix, rank alternatives with the classical methods,
// and carry uncertainty through with triangular fuzzy numbers.
//
// 🚀 What is mcdm?
//
//	A deterministic, side-effect-free library that brings together:
//		• Core primitives: decision matrices, criteria, weights & directions
//		• Normalization: vector, linear-max, min-max and sum strategies
//		• Ranking methods: SAW, WPM, TOPSIS, VIKOR, MOORA, WASPAS,
//		  COPRAS, EDAS, CODAS, ARAS — one dispatcher, one result shape
//		• Fuzzy kernel: triangular numbers, defuzzification, fuzzification,
//		  linguistic scales (built-in or YAML-defined)
//		• Fuzzy TOPSIS: ranking on fuzzy matrices without early defuzzification
//		• Expert aggregation: geometric / arithmetic combination of judgments
//		• Sensitivity: OAT, percentage and extreme weight scenarios with a
//		  rank-stability report
//
// ✨ Why choose mcdm?
//
//   - Predictable – every call is a pure function of its inputs; ties break
//     by input order, documented and tested
//   - Guarded – degenerate inputs (zero columns, flat ranges) yield finite,
//     well-typed results instead of NaN/Inf
//   - Small API – matrices in, scores and ranks out
//   - Extensible – strict modes, method parameters and linguistic scales are
//     plain options
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/        — DecisionMatrix, Criterion, RankingResult & shared validation
//	normalize/   — the four interchangeable normalization strategies
//	rank/        — the ten crisp ranking methods + name dispatcher
//	fuzzy/       — triangular fuzzy arithmetic, (de)fuzzification, scales
//	ftopsis/     — fuzzy TOPSIS over triangular matrices
//	aggregate/   — multi-expert matrix aggregation
//	sensitivity/ — weight perturbation scenarios & stability analysis
//
// Quick sketch:
//
//	    criteria        alternatives × criteria
//	   ┌─────────┐      ┌───────────────┐
//	   │ w, dir  │  +   │ raw matrix    │ ──▶ rank.Rank("TOPSIS", …) ──▶ scores, ranks
//	   └─────────┘      └───────────────┘
//
// Dive into each package's doc.go for formulas, guards and examples.
//
//	go get github.com/katalvlaran/mcdm
package mcdm
