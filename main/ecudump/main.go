package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/jd3nn1s/ecudump"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK     = 0
	exitNoData = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ecudump", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "TOML file with temperature thresholds")
	debug := flags.Bool("debug", false, "log parser decisions and decode failures to stderr")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: ecudump [flags] [input-file]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	log.SetOutput(stderr)
	log.SetLevel(log.ErrorLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	config := ecudump.DefaultConfig()
	if *configFile != "" {
		var err error
		if config, err = ecudump.LoadConfig(*configFile); err != nil {
			log.WithField("err", err).Error("unable to load configuration")
			return exitConfig
		}
	}

	var input []byte
	var err error
	if flags.NArg() > 0 {
		fileName := flags.Arg(0)
		input, err = ioutil.ReadFile(fileName)
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Error: File '%s' not found\n", fileName)
			return exitNoData
		}
		err = errors.Wrapf(err, "unable to read %s", fileName)
	} else {
		input, err = ioutil.ReadAll(stdin)
		err = errors.Wrap(err, "unable to read standard input")
	}
	if err != nil {
		log.WithField("err", err).Error("unable to read input")
		return exitNoData
	}

	report, found := ecudump.Parse(string(input))
	out := ecudump.NewRenderer(config).Render(report)
	if _, err := io.WriteString(stdout, out); err != nil {
		log.WithField("err", err).Error("unable to write report")
		return exitNoData
	}
	if !found {
		return exitNoData
	}
	return exitOK
}
