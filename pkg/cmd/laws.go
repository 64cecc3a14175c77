// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/consensys/go-lattice/pkg/logic"
	"github.com/consensys/go-lattice/pkg/universe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// lawsCmd checks the lattice laws of the built-in universes over sampled
// carrier values.  The checks drive join, meet, order and the cover
// functions from many goroutines at once, so a failure here flags either a
// broken law or a data race.
var lawsCmd = &cobra.Command{
	Use:   "laws",
	Short: "Check the lattice laws of the built-in universes.",
	Long: `Sample carrier values for every built-in universe and check the lattice
laws (idempotence, commutativity, absorption by bottom and top), order
consistency, duality and the interpretation round trip.  Exits non-zero if
any law is violated.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			samples = getUint(cmd, "samples")
			jobs    = getUint(cmd, "jobs")
			seed    = getUint64(cmd, "seed")
			report  = getString(cmd, "report")
		)
		//
		reports := runLawSuites(samples, jobs, seed)
		violations := uint(0)
		//
		for _, r := range reports {
			log.Debugf("%s: %d checks, %d violations", r.Universe, r.Checks, r.Violations)
			//
			violations += r.Violations
			//
			for _, law := range r.Failures {
				log.Errorf("%s: %s does not hold", r.Universe, law)
			}
		}
		//
		if report != "" {
			writeLawReport(report, reports)
		}
		//
		if violations > 0 {
			fmt.Printf("detected %d law violations\n", violations)
			os.Exit(1)
		}
		//
		fmt.Printf("all laws hold across %d universes\n", len(reports))
	},
}

// LawReport summarises the outcome of checking one universe.
type LawReport struct {
	Universe   string   `yaml:"universe"`
	Carrier    string   `yaml:"carrier"`
	Checks     uint     `yaml:"checks"`
	Violations uint     `yaml:"violations"`
	Failures   []string `yaml:"failures,omitempty"`
}

// Record the outcome of checking one law instance.
func (r *LawReport) check(law string, holds bool) {
	r.Checks++
	//
	if !holds {
		r.Violations++
		//
		if !slices.Contains(r.Failures, law) {
			r.Failures = append(r.Failures, law)
		}
	}
}

type lawSuite func(samples uint, seed uint64) LawReport

// One suite per built-in universe, each paired with its dual.
func lawSuites() []lawSuite {
	return []lawSuite{
		checkIntegerLaws[universe.ZIncUniverse[universe.Signed], universe.ZDecUniverse[universe.Signed]],
		checkIntegerLaws[universe.ZDecUniverse[universe.Signed], universe.ZIncUniverse[universe.Signed]],
		checkIntegerLaws[universe.ZIncUniverse[universe.Positive], universe.ZDecUniverse[universe.Positive]],
		checkIntegerLaws[universe.ZDecUniverse[universe.Positive], universe.ZIncUniverse[universe.Positive]],
		checkIntegerLaws[universe.ZIncUniverse[universe.Negative], universe.ZDecUniverse[universe.Negative]],
		checkIntegerLaws[universe.ZDecUniverse[universe.Negative], universe.ZIncUniverse[universe.Negative]],
		checkBooleanLaws[universe.PreB, universe.PreBDual],
		checkBooleanLaws[universe.PreBDual, universe.PreB],
		checkBooleanLaws[universe.PreBInc, universe.PreBDec],
		checkBooleanLaws[universe.PreBDec, universe.PreBInc],
	}
}

// Run every law suite, at most jobs at a time.
func runLawSuites(samples uint, jobs uint, seed uint64) []LawReport {
	var (
		suites  = lawSuites()
		reports = make([]LawReport, len(suites))
		group   errgroup.Group
	)
	//
	group.SetLimit(int(jobs))
	//
	for i, suite := range suites {
		group.Go(func() error {
			reports[i] = suite(samples, seed+uint64(i))
			return nil
		})
	}
	// Suites report violations rather than aborting, hence no error here.
	_ = group.Wait()
	//
	return reports
}

// Check the laws of an integer universe U against its dual D over sampled
// carrier values.
func checkIntegerLaws[U, D universe.Universe[int64]](samples uint, seed uint64) LawReport {
	var (
		u      U
		d      D
		rng    = rand.New(rand.NewPCG(seed, 0))
		report = LawReport{Universe: u.Name(), Carrier: "int64"}
		lo     = min(u.Bot(), u.Top()) + 1
		hi     = max(u.Bot(), u.Top()) - 1
	)
	//
	report.check("next saturates at top", u.Next(u.Top()) == u.Top())
	report.check("prev saturates at bot", u.Prev(u.Bot()) == u.Bot())
	report.check("bot is below top", u.Order(u.Bot(), u.Top()))
	//
	for i := uint(0); i < samples; i++ {
		x := sampleCarrier(rng, lo, hi)
		y := sampleCarrier(rng, lo, hi)
		//
		checkLatticeLaws(&report, u, x, y)
		report.check("dual order is the reversed order", d.Order(x, y) == u.Order(y, x))
		// Round trip through the formula vocabulary.
		element := universe.New[U](x)
		back := universe.Interpret[U](element.Deinterpret("x"))
		report.check("deinterpretation round trips", back.HasValue() && back.Unwrap() == element)
	}
	//
	return report
}

// Check the laws of a Boolean universe U against its dual D.  The carrier
// has two values, so the checks are exhaustive rather than sampled.
func checkBooleanLaws[U, D universe.BoolUniverse](_ uint, _ uint64) LawReport {
	var (
		u      U
		d      D
		report = LawReport{Universe: u.Name(), Carrier: "bool"}
		values = []bool{false, true}
	)
	//
	report.check("next saturates at top", u.Next(u.Top()) == u.Top())
	report.check("prev saturates at bot", u.Prev(u.Bot()) == u.Bot())
	report.check("bot is below top", u.Order(u.Bot(), u.Top()))
	// The bottom constant is exactly representable in every Boolean universe.
	bottom := u.InterpretConstant(u.FormulaOfConstant(u.Bot()))
	report.check("the bottom constant round trips", bottom.IsOk() && bottom.Value() == u.Bot())
	//
	for _, x := range values {
		for _, y := range values {
			checkLatticeLaws(&report, u, x, y)
			report.check("dual order is the reversed order", d.Order(x, y) == u.Order(y, x))
			report.check("conjunction agrees with meet", u.Fun2(logic.And, x, y) == u.Meet(x, y))
			report.check("disjunction agrees with join", u.Fun2(logic.Or, x, y) == u.Join(x, y))
		}
	}
	//
	return report
}

// The laws every universe must satisfy, checked at one sample point.
func checkLatticeLaws[U universe.Universe[V], V comparable](report *LawReport, u U, x V, y V) {
	report.check("join is idempotent", u.Join(x, x) == x)
	report.check("meet is idempotent", u.Meet(x, x) == x)
	report.check("join is commutative", u.Join(x, y) == u.Join(y, x))
	report.check("meet is commutative", u.Meet(x, y) == u.Meet(y, x))
	report.check("bot is neutral for join", u.Join(x, u.Bot()) == x)
	report.check("bot absorbs meet", u.Meet(x, u.Bot()) == u.Bot())
	report.check("top absorbs join", u.Join(x, u.Top()) == u.Top())
	report.check("top is neutral for meet", u.Meet(x, u.Top()) == x)
	report.check("join is an upper bound", u.Order(x, u.Join(x, y)))
	report.check("meet is a lower bound", u.Order(u.Meet(x, y), x))
	report.check("strict order implies order", !u.StrictOrder(x, y) || u.Order(x, y))
}

// Sample uniformly from the inclusive carrier range [lo, hi].
func sampleCarrier(rng *rand.Rand, lo int64, hi int64) int64 {
	span := uint64(hi) - uint64(lo) + 1
	// A zero span means the range covers every value.
	if span == 0 {
		return int64(rng.Uint64())
	}
	//
	return lo + int64(rng.Uint64()%span)
}

// Write a YAML summary of the law reports to the given file.
func writeLawReport(filename string, reports []LawReport) {
	bytes, err := yaml.Marshal(reports)
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("law report written to %s", filename)
}

func init() {
	rootCmd.AddCommand(lawsCmd)
	lawsCmd.Flags().Uint("samples", 1000, "number of carrier values sampled per universe")
	lawsCmd.Flags().Uint("jobs", 4, "number of universes checked concurrently")
	lawsCmd.Flags().Uint64("seed", 0, "seed for the carrier sampler")
	lawsCmd.Flags().String("report", "", "write a YAML summary to the given file")
}
