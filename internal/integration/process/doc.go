// Package process runs the editor's Ctrl-X shell commands.
//
// A Runner executes "<shell> -c <command>" synchronously with stdin
// closed and stdout and stderr captured into one buffer. Every run gets
// a unique ID so log lines for the same command can be correlated.
//
//	runner := process.NewRunner(process.WithShell("/bin/sh"))
//	res, err := runner.Run(ctx, "make test")
//	if err != nil {
//	    // the shell could not be started, or the run timed out
//	}
//	fmt.Println(res.ExitCode, res.LastLine())
//
// Runs are bounded by the Runner's timeout; on expiry the child is
// killed and Run returns ErrTimeout along with whatever output was
// captured.
package process
