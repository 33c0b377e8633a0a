package benchmark

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary renders the report as human-readable text with grouped digits.
func (r *Report) Summary() string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	p.Fprintf(&b, "Processed %d scores in %.3f ms using %d workers\n", r.Count, r.ElapsedMs, r.Workers)
	p.Fprintf(&b, "Sequential pass: %.3f ms (speedup %.2fx)\n", r.SequentialMs, r.Speedup)
	p.Fprintf(&b, "Average score: %.2f\n", r.AverageScore)
	p.Fprintf(&b, "Heap allocated: %d bytes\n", r.HeapAllocBytes)
	if r.Process != nil {
		p.Fprintf(&b, "CPU time: %.3f s\n", r.Process.CPUSeconds)
		p.Fprintf(&b, "Resident memory: %d -> %d bytes\n", r.Process.RSSBeforeBytes, r.Process.RSSAfterBytes)
	}
	b.WriteString("Seed: " + strconv.FormatUint(r.Seed, 10) + "\n")
	return b.String()
}
