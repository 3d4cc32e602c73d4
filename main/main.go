package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/io"
)

func main() {
	var (
		galaxyFile, planetsFile string
		exampleConfig           string
		seed                    int64
		verbose                 bool
	)
	vars := map[string]*string{
		"Galaxy":        &galaxyFile,
		"Planets":       &planetsFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&galaxyFile, "Galaxy", "",
		"Configuration file for [Galaxy] mode.",
	)
	flag.StringVar(
		&planetsFile, "Planets", "",
		"Configuration file for [Planets] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Galaxy' and "+
			"'Planets'.",
	)
	flag.Int64Var(
		&seed, "Seed", -1,
		"Overrides the Seed value of a [Galaxy] configuration file.",
	)
	flag.BoolVar(&verbose, "Verbose", false, "Log every build stage.")

	flag.Parse()

	logger := newLogger(verbose)
	defer logger.Sync()

	modeName, err := getModeName(vars)
	if err != nil {
		logger.Fatal(err.Error())
	}

	switch modeName {
	case "Galaxy":
		wrap, err := io.ReadGalaxyConfig(galaxyFile)
		if err != nil {
			logger.Fatal("Could not read config", zap.Error(err))
		}
		con := &wrap.Galaxy
		if seed >= 0 {
			con.Seed = seed
		}
		if !con.ValidAlgorithm() {
			logger.Fatal(
				"Invalid 'Algorithm' value.", zap.String("value", con.Algorithm),
			)
		}
		galaxyMain(con, logger)

	case "Planets":
		wrap, err := io.ReadPlanetsConfig(planetsFile)
		if err != nil {
			logger.Fatal("Could not read config", zap.Error(err))
		}
		planetsMain(wrap, logger)

	case "ExampleConfig":
		switch exampleConfig {
		case "Galaxy":
			fmt.Println(io.ExampleGalaxyFile)
		case "Planets":
			fmt.Println(io.ExamplePlanetsFile)
		default:
			logger.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Galaxy' and 'Planets'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	return logger
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but ics "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func galaxyMain(con *io.GalaxyConfig, logger *zap.Logger) {
	g, err := io.NewGalaxy(con, logger)
	if err != nil {
		logger.Fatal("Could not build galaxy", zap.Error(err))
	}

	logger.Info(
		"Built galaxy",
		zap.Int("particles", 1+g.NBulge()+g.NDisc()),
		zap.Int("bulge", g.NBulge()),
		zap.Int("disc", g.NDisc()),
		zap.Uint64("seed", g.Seed()),
		zap.String("algorithm", con.Algorithm),
	)
	writeOutput(con.Output, g.Snapshot(), logger)
}

func planetsMain(wrap *io.PlanetsWrapper, logger *zap.Logger) {
	sys, err := io.NewSystem(wrap, logger)
	if err != nil {
		logger.Fatal("Could not build planetary system", zap.Error(err))
	}

	logger.Info("Built planetary system", zap.Int("bodies", sys.Len()))
	writeOutput(wrap.Planets.Output, sys.Snapshot(), logger)
}

func writeOutput(fname string, snap *ics.Snapshot, logger *zap.Logger) {
	if fname == "" {
		if err := io.WriteSnapshot(os.Stdout, snap); err != nil {
			logger.Fatal("Could not write particles", zap.Error(err))
		}
		return
	}

	f, err := os.Create(fname)
	if err != nil {
		logger.Fatal("Could not create output file", zap.Error(err))
	}
	if err = io.WriteSnapshot(f, snap); err != nil {
		f.Close()
		logger.Fatal("Could not write particles", zap.Error(err))
	}
	if err = f.Close(); err != nil {
		logger.Fatal("Could not close output file", zap.Error(err))
	}
	logger.Info("Wrote particles", zap.String("file", fname))
}
