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
	"os"
	"strings"

	"github.com/consensys/go-lattice/pkg/logic"
	"github.com/consensys/go-lattice/pkg/universe"
	"github.com/consensys/go-lattice/pkg/util/termio"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// universesCmd describes the built-in abstract universes.
var universesCmd = &cobra.Command{
	Use:   "universes",
	Short: "Describe the built-in abstract universes.",
	Long: `Print a table of the built-in abstract universes: their carrier type,
bottom and top sentinels, the relational symbols realizing their order, and
(for Boolean universes) the supported logical connectives.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		printUniverseTable()
	},
}

func printUniverseTable() {
	rows := universeRows()
	//
	log.Debugf("describing %d universes", len(rows)-1)
	//
	tbl := termio.NewTablePrinter(uint(len(rows[0])), uint(len(rows)))
	//
	for i, row := range rows {
		tbl.SetRow(uint(i), row...)
	}
	// Clamp column widths when writing to an actual terminal.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			tbl.SetMaxWidths(uint(width) / uint(len(rows[0])))
		}
	}
	//
	tbl.Print()
}

// Construct one row per built-in universe, plus a leading header row.
func universeRows() [][]string {
	return [][]string{
		{"UNIVERSE", "CARRIER", "BOT", "TOP", "ORDER", "STRICT", "CONNECTIVES"},
		integerRow[universe.ZIncUniverse[universe.Signed]](),
		integerRow[universe.ZDecUniverse[universe.Signed]](),
		integerRow[universe.ZIncUniverse[universe.Positive]](),
		integerRow[universe.ZDecUniverse[universe.Positive]](),
		integerRow[universe.ZIncUniverse[universe.Negative]](),
		integerRow[universe.ZDecUniverse[universe.Negative]](),
		booleanRow[universe.PreB](),
		booleanRow[universe.PreBDual](),
		booleanRow[universe.PreBInc](),
		booleanRow[universe.PreBDec](),
	}
}

func integerRow[U universe.Universe[int64]]() []string {
	var u U
	//
	return []string{
		u.Name(), "int64",
		fmt.Sprintf("%d", u.Bot()), fmt.Sprintf("%d", u.Top()),
		u.OrderSig().String(), u.StrictOrderSig().String(),
		"",
	}
}

func booleanRow[U universe.BoolUniverse]() []string {
	var u U
	//
	return []string{
		u.Name(), "bool",
		fmt.Sprintf("%t", u.Bot()), fmt.Sprintf("%t", u.Top()),
		u.OrderSig().String(), u.StrictOrderSig().String(),
		connectivesOf(u),
	}
}

// Render the supported connectives of a Boolean universe as symbols.
func connectivesOf(u universe.BoolUniverse) string {
	var symbols []string
	//
	for _, sig := range []logic.Sig{
		logic.Not, logic.And, logic.Or, logic.Imply, logic.ImpliedBy,
		logic.Equiv, logic.Xor, logic.Eq, logic.Neq,
	} {
		if u.IsSupportedFun(sig) {
			symbols = append(symbols, sig.String())
		}
	}
	//
	return strings.Join(symbols, " ")
}

func init() {
	rootCmd.AddCommand(universesCmd)
}
