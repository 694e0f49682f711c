// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schemes

// globalRanges is the network fallback table, consulted when no issuer
// record matches. Order is load-bearing: matching is first match wins,
// so narrower entries sit above broader ones that contain them (the
// six-digit Discover block before UnionPay's "62", Meeza's "5078"
// block before Maestro's "50").
var globalRanges = []NetworkRange{
	// Narrow six-digit blocks first.
	{Start: "507803", End: "507899", Network: NetworkMeeza, Lengths: []int{16}, CVVLength: 3},
	{Start: "622126", End: "622925", Network: NetworkDiscover, Lengths: []int{16, 17, 18, 19}, CVVLength: 3},
	{Start: "222100", End: "272099", Network: NetworkMastercard, Lengths: []int{16}, CVVLength: 3},

	// Four-digit blocks.
	{Start: "2200", End: "2204", Network: NetworkMir, Lengths: []int{16, 17, 18, 19}, CVVLength: 3},
	{Start: "3528", End: "3589", Network: NetworkJCB, Lengths: []int{16, 17, 18, 19}, CVVLength: 3},
	{Start: "6011", End: "6011", Network: NetworkDiscover, Lengths: []int{16, 19}, CVVLength: 3},

	// Three-digit blocks.
	{Start: "300", End: "305", Network: NetworkDiners, Lengths: []int{14, 16, 19}, CVVLength: 3},
	{Start: "644", End: "649", Network: NetworkDiscover, Lengths: []int{16, 19}, CVVLength: 3},
	{Start: "639", End: "639", Network: NetworkMaestro, Lengths: []int{13, 14, 15, 16, 17, 18, 19}, CVVLength: 3},

	// Two-digit blocks.
	{Start: "34", End: "34", Network: NetworkAmex, Lengths: []int{15}, CVVLength: 4},
	{Start: "37", End: "37", Network: NetworkAmex, Lengths: []int{15}, CVVLength: 4},
	{Start: "36", End: "36", Network: NetworkDiners, Lengths: []int{14, 16, 19}, CVVLength: 3},
	{Start: "38", End: "39", Network: NetworkDiners, Lengths: []int{14, 16, 19}, CVVLength: 3},
	{Start: "51", End: "55", Network: NetworkMastercard, Lengths: []int{16}, CVVLength: 3},
	{Start: "65", End: "65", Network: NetworkDiscover, Lengths: []int{16, 19}, CVVLength: 3},
	{Start: "50", End: "50", Network: NetworkMaestro, Lengths: []int{13, 14, 15, 16, 17, 18, 19}, CVVLength: 3},
	{Start: "56", End: "58", Network: NetworkMaestro, Lengths: []int{13, 14, 15, 16, 17, 18, 19}, CVVLength: 3},
	{Start: "67", End: "67", Network: NetworkMaestro, Lengths: []int{13, 14, 15, 16, 17, 18, 19}, CVVLength: 3},
	{Start: "62", End: "62", Network: NetworkUnionPay, Lengths: []int{16, 17, 18, 19}, CVVLength: 3},

	// Broadest last.
	{Start: "4", End: "4", Network: NetworkVisa, Lengths: []int{13, 16, 19}, CVVLength: 3},
}
