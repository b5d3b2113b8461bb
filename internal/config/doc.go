// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates application configuration.
//
// Configuration values are collected from three sources and merged in
// priority order (earlier sources win for non-zero fields):
//
//  1. Environment variables (caarlos0/env struct tags)
//  2. Command-line flags
//  3. An optional JSON file, whose path is itself taken from the first
//     two sources (CONFIG env variable or -c/-config flag)
//
// Merging is performed with dario.cat/mergo; the final configuration is
// validated before use and defaults are applied for optional fields.
package config
