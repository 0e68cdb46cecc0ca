// Package crash turns the fault accumulator into a crash report.
//
// Guard is deferred at the top of a goroutine or main. On panic it adds
// one last breadcrumb for the panicking frame, hands the breadcrumb trail
// to a Reporter and panics again with the original value:
//
//	func main() {
//	    defer crash.Guard(log.Accumulator(), crash.NewWriterReporter(os.Stderr))
//	    run()
//	}
//
// SentryReporter ships the trail to Sentry as breadcrumbs of the panic
// event. WriterReporter prints it for links that cannot reach a sink.
package crash
