package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"pokerequity-server/pkg/sessionlog"
)

var file = flag.String("f", "", "the transcript file; defaults to stdin")

func main() {
	flag.Parse()

	in := os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			logrus.WithError(err).Fatal("could not open transcript")
		}
		defer f.Close()

		in = f
	}

	if err := sessionlog.NewParser(os.Stdout).Parse(in); err != nil {
		logrus.WithError(err).Fatal("could not parse transcript")
	}
}
