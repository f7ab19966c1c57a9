// Package plan stores the operation sequence an assembly sends to the
// engine, so that setups can be exported, reloaded and diffed.
//
// Plans carry no timestamps or identities: two structurally identical scene
// trees encode to identical bytes.
package plan
