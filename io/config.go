package io

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/ics/galaxy"
	"github.com/phil-mansfield/ics/phys"
	"github.com/phil-mansfield/ics/rand"
)

const (
	ExampleGalaxyFile = `[Galaxy]

#######################
# Required Parameters #
#######################

# Number of stars. The central black hole is added on top of these.
N = 10000

# Radius of the disc.
R = 4.6e20
# Scale height of the disc.
Z = 9.3e18
# Full thickness of the disc. Disc heights are uniform in [-SigmaR/2, SigmaR/2).
SigmaR = 1.9e19
# Standard deviation of bulge heights.
SigmaZ = 1.5e19
# Standard deviation of bulge radii.
BulgeHeight = 3.1e19
# Fraction of the stars which are placed in the bulge, in [0, 1].
BulgeFraction = 0.2

#######################
# Optional Parameters #
#######################

# Everything is in SI units by default. Changing G and SolarMass lets you
# work in any other unit system.
# G = 6.6743e-11
# SolarMass = 1.989e30

# Standard deviation of each velocity component, in m/s. Default is 1000.
# VelocityScale = 1000

# Initial mass function. kroupa is currently the only one supported.
# IMF = kroupa

# Random number generator and seed. If Seed is not set, the current time is
# used and the chosen seed is written to the log. Algorithm can be one of
# [ PCG | ChaCha8 ].
# Seed = 1337
# Algorithm = PCG

# File the particles will be written to. Default is stdout.
# Output = path/to/galaxy.txt`

	ExamplePlanetsFile = `[Planets]

#######################
# Optional Parameters #
#######################

# Gravitational constant. Default is the SI value.
# G = 6.6743e-11

# Start from the Sun and the eight planets of the Solar System. If set, the
# [Star] section is ignored and any planets given below are added afterwards.
# SolarSystem = false

# A whitespace-separated table of extra planets with the columns
#     mass radius eccentricity inclination
# Lines starting with '#' are skipped.
# Table = path/to/planets.txt

# Boost all velocities into the barycentric frame after every planet has been
# added. By default velocities are left in the frame of the star.
# OffsetMomentum = false

# File the particles will be written to. Default is stdout.
# Output = path/to/system.txt

[Star]
Mass = 1.989e30

# Planets are added in order of increasing radius, whatever order they
# appear in here.
[Planet "earth"]
Mass = 5.972e24
Radius = 1.496e11

[Planet "jupiter"]
Mass = 1.8982e27
Radius = 7.786e11
# Eccentricity = 0.0489
# Inclination = 0.0227`
)

type SharedConfig struct {
	// Optional
	Output string
}

func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}

type GalaxyConfig struct {
	SharedConfig
	galaxy.Config

	// Optional
	Seed      int64
	Algorithm string
}

type GalaxyWrapper struct {
	Galaxy GalaxyConfig
}

func DefaultGalaxyWrapper() *GalaxyWrapper {
	con := GalaxyConfig{Config: *galaxy.DefaultConfig()}
	con.Seed = -1
	con.Algorithm = rand.PCG.String()
	return &GalaxyWrapper{con}
}

func (con *GalaxyConfig) ValidSeed() bool {
	return con.Seed >= 0
}
func (con *GalaxyConfig) ValidAlgorithm() bool {
	_, err := rand.ParseAlgorithm(con.Algorithm)
	return err == nil
}

// Generator returns the random number generator described by the config.
// If no seed was given, the generator is seeded with the current time.
func (con *GalaxyConfig) Generator() (*rand.Generator, error) {
	alg, err := rand.ParseAlgorithm(con.Algorithm)
	if err != nil {
		return nil, err
	}
	if !con.ValidSeed() {
		return rand.NewTimeSeed(alg), nil
	}
	return rand.New(alg, uint64(con.Seed)), nil
}

type PlanetsConfig struct {
	SharedConfig

	// Optional
	G              float64
	SolarSystem    bool
	Table          string
	OffsetMomentum bool
}

func (con *PlanetsConfig) ValidG() bool {
	return con.G > 0
}
func (con *PlanetsConfig) ValidTable() bool {
	return con.Table != ""
}

type StarConfig struct {
	Mass float64
}

type PlanetConfig struct {
	// Required
	Mass, Radius float64

	// Optional
	Eccentricity, Inclination float64

	// Optional, "undocumented"
	Name string
}

func (p *PlanetConfig) CheckInit(name string) error {
	if p.Mass <= 0 {
		return fmt.Errorf(
			"Need to specify a positive Mass for Planet '%s'.", name,
		)
	} else if p.Radius <= 0 {
		return fmt.Errorf(
			"Need to specify a positive Radius for Planet '%s'.", name,
		)
	} else if p.Eccentricity < 0 || p.Eccentricity >= 1 {
		return fmt.Errorf(
			"Eccentricity of Planet '%s' must be in range [0, 1), but is %g",
			name, p.Eccentricity,
		)
	}

	p.Name = name
	return nil
}

type PlanetsWrapper struct {
	Planets PlanetsConfig
	Star    StarConfig
	Planet  map[string]*PlanetConfig
}

func DefaultPlanetsWrapper() *PlanetsWrapper {
	con := PlanetsConfig{}
	con.G = phys.G
	return &PlanetsWrapper{Planets: con}
}

func (wrap *PlanetsWrapper) ValidStar() bool {
	return wrap.Star.Mass > 0
}

// CheckInit checks every [Planet] section and fills in its Name.
func (wrap *PlanetsWrapper) CheckInit() error {
	if !wrap.Planets.ValidG() {
		return fmt.Errorf(
			"G must be positive, but is %g.", wrap.Planets.G,
		)
	} else if !wrap.Planets.SolarSystem && !wrap.ValidStar() {
		return fmt.Errorf(
			"Need to specify a positive Mass in [Star] unless SolarSystem is set.",
		)
	}

	for name, p := range wrap.Planet {
		if err := p.CheckInit(name); err != nil {
			return err
		}
	}
	return nil
}

// SortedPlanets returns the [Planet] sections ordered by increasing radius,
// with ties broken by name.
func (wrap *PlanetsWrapper) SortedPlanets() []PlanetConfig {
	ps := make([]PlanetConfig, 0, len(wrap.Planet))
	for name, p := range wrap.Planet {
		pc := *p
		pc.Name = name
		ps = append(ps, pc)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Radius != ps[j].Radius {
			return ps[i].Radius < ps[j].Radius
		}
		return ps[i].Name < ps[j].Name
	})
	return ps
}

// ReadGalaxyConfig reads a [Galaxy] config file. Files ending in .toml are
// read as TOML, everything else as gcfg.
func ReadGalaxyConfig(fname string) (*GalaxyWrapper, error) {
	wrap := DefaultGalaxyWrapper()
	if err := readConfig(fname, wrap); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ReadPlanetsConfig reads a [Planets] config file along with its [Star] and
// [Planet] sections. Files ending in .toml are read as TOML, everything else
// as gcfg.
func ReadPlanetsConfig(fname string) (*PlanetsWrapper, error) {
	wrap := DefaultPlanetsWrapper()
	if err := readConfig(fname, wrap); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

func readConfig(fname string, wrap interface{}) error {
	if strings.ToLower(filepath.Ext(fname)) != ".toml" {
		return gcfg.ReadFileInto(wrap, fname)
	}

	md, err := toml.DecodeFile(fname, wrap)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return fmt.Errorf(
			"Unrecognized variables in '%s': %s.",
			fname, strings.Join(keys, ", "),
		)
	}
	return nil
}
