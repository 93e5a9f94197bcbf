// Package yuzutest provides utilities for testing components in
// isolation: an in-memory document to mount onto, finders for locating
// nodes in the attached tree, and JSON snapshots with golden-file
// comparison.
//
// Typical usage:
//
//	tester := yuzutest.NewComponentTesterWithT(t)
//	if err := tester.Mount(NewCounter); err != nil {
//	    t.Fatal(err)
//	}
//	tester.Find(yuzutest.ByTag("button")).First()
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.json")
package yuzutest
