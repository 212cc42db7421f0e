/*
 * Corvid - a concurrent UCI chess engine
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Corvid Chess Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/config"
)

// checkOption builds a Check-type uciOption bound to a *bool setting: its
// current/default value comes from the setting itself and its handler
// writes any new value straight back through target.
func checkOption(name string, target *bool, label string) *uciOption {
	v := strconv.FormatBool(*target)
	return &uciOption{
		NameID:       name,
		HandlerFunc:  boolOption(target, label),
		OptionType:   Check,
		DefaultValue: v,
		CurrentValue: v,
	}
}

// init will define all available uci options and store them into the uciOption map
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Use_Hash":     checkOption("Use_Hash", &Settings.Search.UseTT, "Use Hash"),
		"Hash":         {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TTSize), CurrentValue: strconv.Itoa(Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},

		"Use_Book": checkOption("Use_Book", &Settings.Search.UseBook, "Use Book"),

		"Ponder": checkOption("Ponder", &Settings.Search.UsePonder, "Use Ponder"),

		"Quiescence": checkOption("Quiescence", &Settings.Search.UseQuiescence, "Use Quiescence"),
		"Use_QHash":  checkOption("Use_QHash", &Settings.Search.UseQSTT, "Use Hash in Quiescence"),
		"Use_SEE":    checkOption("Use_SEE", &Settings.Search.UseSEE, "use SEE"),

		"Use_PVS":         checkOption("Use_PVS", &Settings.Search.UsePVS, "Use PVS"),
		"Use_IID":         checkOption("Use_IID", &Settings.Search.UseIID, "Use IID"),
		"Use_Killer":      checkOption("Use_Killer", &Settings.Search.UseKiller, "Use Killer Moves"),
		"Use_HistCount":   checkOption("Use_HistCount", &Settings.Search.UseHistoryCounter, "Use History Counter"),
		"Use_CounterMove": checkOption("Use_CounterMove", &Settings.Search.UseCounterMoves, "Use Counter Moves"),

		"Use_Rfp":      checkOption("Use_Rfp", &Settings.Search.UseRFP, "use Reverse Futility Pruning (RFP)"),
		"Use_NullMove": checkOption("Use_NullMove", &Settings.Search.UseNullMove, "Use Null Move Pruning"),
		"Use_Mdp":      checkOption("Use_Mdp", &Settings.Search.UseMDP, "Use MDP"),
		"Use_Fp":       checkOption("Use_Fp", &Settings.Search.UseFP, "use Futility Pruning (FP)"),
		"Use_Lmr":      checkOption("Use_Lmr", &Settings.Search.UseLmr, "use Late Move Reduction"),
		"Use_Lmp":      checkOption("Use_Lmp", &Settings.Search.UseLmp, "use Late Move Pruning"),

		"Use_Ext":         checkOption("Use_Ext", &Settings.Search.UseExt, "use Extensions"),
		"Use_ExtAddDepth": checkOption("Use_ExtAddDepth", &Settings.Search.UseExtAddDepth, "use Extensions Add to Depth"),
		"Use_CheckExt":    checkOption("Use_CheckExt", &Settings.Search.UseCheckExt, "use Check Extension"),
		"Use_ThreatExt":   checkOption("Use_ThreatExt", &Settings.Search.UseThreatExt, "use Threat Extension"),

		"Eval_Lazy":     checkOption("Eval_Lazy", &Settings.Eval.UseLazyEval, "use Lazy Eval"),
		"Eval_Mobility": checkOption("Eval_Mobility", &Settings.Eval.UseMobility, "use Eval Mobility"),
		"Eval_AdvPiece": checkOption("Eval_AdvPiece", &Settings.Eval.UseAdvancedPieceEval, "use Adv Piece Eval"),
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Use_Book",
		"Ponder",

		"Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_HistCount",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Rfp",
		"Use_NullMove",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_ExtAddDepth",
		"Use_CheckExt",
		"Use_ThreatExt",

		"Eval_Mobility",
		"Eval_AdvPiece",
	}
}

// GetOptions returns all available uci options a slice of strings
// to be send to the UCI user interface during the initialization
// phase of the UCI protocol
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption will return a representation of the uci option as required by
// the UCI protocol during the initialization phase of the UCI protocol
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Combo:
		os.WriteString("combo ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" var ")
		os.WriteString(o.VarValue)
	case Button:
		os.WriteString("button")
	case String:
		os.WriteString("string ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	}

	return os.String()
}

// uciOptionType is a enum representing the different UCI Option types
type uciOptionType int

// uci option types constants
const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is a function type to by used as function pointer
// in each uci option defined. This is called when the uci option
// is changed by the "setoption" command
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines UCI Options as described in the UCI protocol.
// Each options has a function pointer to a handler which will be
// called when the "setoption" command changes the option.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap convenience type for a map of pointers to uci options
type optionMap map[string]*uciOption

// uciOptions stores all available uci options
var uciOptions optionMap

// to control the sort order of all options
var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uci options changes
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, option *uciOption) {
	s := reflect.ValueOf(&Settings.Eval).Elem()
	typeOfT := s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Evaluation Config:\n")
	s = reflect.ValueOf(&Settings.Search).Elem()
	typeOfT = s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Search Config:\n")
	log.Debug(Settings.String())

}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TTSize = v
	u.mySearch.ResizeCache()
}

// boolOption returns a handler that parses a Check option's current value
// and writes it through target, the setting field the option controls.
func boolOption(target *bool, label string) optionHandler {
	return func(_ *UciHandler, o *uciOption) {
		v, _ := strconv.ParseBool(o.CurrentValue)
		*target = v
		log.Debugf("Set %s to %v", label, *target)
	}
}
