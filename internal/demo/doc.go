// Package demo is the scenario runner behind the fnkit command. Each
// scenario exercises the library packages end to end and prints what it
// computed.
package demo
