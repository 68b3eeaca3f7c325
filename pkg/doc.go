// Package pkg provides the core libraries for Spreadpress gallery planning.
//
// # Overview
//
// Spreadpress partitions ordered photo galleries into magazine-style
// layout spreads. The pkg directory is organized into four main areas:
//
//  1. [spread], [theme] - Domain logic (the planner, rule tables, captions)
//  2. [cache], [store] - Infrastructure (plan/artifact caching, gallery storage)
//  3. [render] - Artifact generation (JSON, HTML)
//  4. [pipeline] - Orchestration (plan → decorate → render)
//
// # Architecture
//
// The typical data flow through Spreadpress:
//
//	Gallery JSON
//	     ↓
//	[gallery]   decode and validate
//	     ↓
//	[theme]     select the rule table
//	     ↓
//	[spread]    partition into spreads, decorate with captions
//	     ↓
//	[render]    generate JSON/HTML artifacts
//
// The [pipeline] package wires these stages together with content-hash
// caching, and is shared by the CLI and the HTTP API.
package pkg
