package main

import (
	"io"
	"log"
	"os"

	"github.com/korjavin/speedquestions/config"
	"github.com/korjavin/speedquestions/filter"
	"github.com/korjavin/speedquestions/questions"
	"github.com/korjavin/speedquestions/report"
)

func main() {
	// Standard output is reserved for the report
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(os.Stdout, cfg.QuestionsPath); err != nil {
		log.Fatalf("%v", err)
	}
}

// run loads the questions at path and writes the speed limit report to w.
func run(w io.Writer, path string) error {
	all, err := questions.Load(path)
	if err != nil {
		return err
	}
	return report.Write(w, filter.Filter(all))
}
