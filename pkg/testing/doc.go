// Package testing provides an isolated widget test harness: a tester that
// drives build/layout/paint frames against a fake clock, element finders,
// and pointer gesture simulation. No real rendering surface is involved;
// frames paint into a recording canvas.
package testing
