// Package scenario describes and executes scripted loading scenarios.
//
// A scenario manifest declares ships, containers and an ordered list of
// blocks. Each block is a list of steps (load, unload, board, unboard,
// print, notify, echo) and acts as a protected region: the first step that
// fails aborts the rest of its block, the failure is reported, and the
// runner carries on with the next block. There are no retries and a
// rejected load is never partially applied.
//
// Manifests are YAML (gopkg.in/yaml.v3) or JSON with comments
// (github.com/tidwall/jsonc). The built-in scenario is embedded as YAML.
package scenario
