// Package report writes the single machine-readable result line of a
// scaffold run: {"status":"success","path":...,"message":...} or
// {"status":"error","message":...}.
package report
