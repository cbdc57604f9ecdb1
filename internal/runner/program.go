package runner

// DefaultProgram is the fixed demonstration order. The first twenty entries
// mirror the classic tour sequence; the remainder are extended
// demonstrations appended after it.
var DefaultProgram = []string{
	"concurrency.spawn",
	"time.sleep",
	"collections.basics",
	"fileio.roundtrip",
	"fileio.paths",
	"concurrency.counter",
	"system.env",
	"system.exec",
	"values.result",
	"values.option",
	"net.listen",
	"collections.iterate",
	"values.format",
	"system.memory",
	"values.complex",
	"values.selfref",
	"future.ready",
	"concurrency.shared",
	"values.dyncast",
	"recover.boundary",

	// extended demonstrations
	"time.now",
	"time.rate",
	"collections.stats",
	"fileio.formats",
	"fileio.archive",
	"fileio.detect",
	"fileio.cleanup",
	"system.info",
	"future.deferred",
}
