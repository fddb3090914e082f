// Package testutil provides fixtures for testing code that drives external
// processes with execkit: temporary executable scripts, PATH availability
// checks, and stderr capture for asserting on echo output.
//
// # Quick Start
//
//	func TestShout(t *testing.T) {
//	    testutil.RequireCommands(t, "tr")
//	    ws := testutil.NewWorkspace(t)
//	    shout := ws.Script("shout", "tr a-z A-Z")
//
//	    out, err := process.New(shout).InputString("quiet").Output()
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if out != "QUIET" {
//	        t.Fatalf("got %q", out)
//	    }
//	}
package testutil
